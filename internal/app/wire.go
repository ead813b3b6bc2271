//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/arbiter/internal/adapters"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/logging"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// InitApp creates a fully wired App instance. The cleanup closes the RPC connection.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,
		ProvideClock,

		// Adapters
		adapters.AllAdapters,

		// Shared state
		usecase.NewThemeProvider,
		usecase.NewAccountResolver,
		usecase.NewDeploymentResolver,
		usecase.NewFundsMonitor,
		usecase.NewCaseCache,
		usecase.NewCaseActions,

		// Use cases
		usecase.NewContractStatus,
		usecase.NewListCases,
		usecase.NewShowCase,
		usecase.NewCreateCase,

		// App
		NewApp,
	)
	return nil, nil, nil
}
