package app

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trebuchet-org/arbiter/internal/config"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.CaseSelector
	Sink     usecase.ProgressSink
	Theme    *usecase.ThemeProvider
	Account  *usecase.AccountResolver
	Resolver *usecase.DeploymentResolver
	Cache    *usecase.CaseCache
	Actions  *usecase.CaseActions
	Metrics  *prometheus.Registry

	// Use cases
	ContractStatus *usecase.ContractStatus
	ListCases      *usecase.ListCases
	ShowCase       *usecase.ShowCase
	CreateCase     *usecase.CreateCase
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.CaseSelector,
	sink usecase.ProgressSink,
	theme *usecase.ThemeProvider,
	account *usecase.AccountResolver,
	resolver *usecase.DeploymentResolver,
	cache *usecase.CaseCache,
	actions *usecase.CaseActions,
	metrics *prometheus.Registry,
	contractStatus *usecase.ContractStatus,
	listCases *usecase.ListCases,
	showCase *usecase.ShowCase,
	createCase *usecase.CreateCase,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		Selector:       selector,
		Sink:           sink,
		Theme:          theme,
		Account:        account,
		Resolver:       resolver,
		Cache:          cache,
		Actions:        actions,
		Metrics:        metrics,
		ContractStatus: contractStatus,
		ListCases:      listCases,
		ShowCase:       showCase,
		CreateCase:     createCase,
	}, nil
}

// ProvideClock provides the wall clock
func ProvideClock() usecase.Clock {
	return time.Now
}
