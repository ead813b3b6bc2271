package adapters

import (
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/trebuchet-org/arbiter/internal/adapters/blockchain"
	"github.com/trebuchet-org/arbiter/internal/adapters/fs"
	"github.com/trebuchet-org/arbiter/internal/adapters/interactive"
	"github.com/trebuchet-org/arbiter/internal/adapters/terminal"
	"github.com/trebuchet-org/arbiter/internal/usecase"
)

// ProvideRegistry provides the registry the chain counters are registered on.
// A private registry keeps repeated app construction in tests from colliding.
func ProvideRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewPreferenceStoreAdapter,
	wire.Bind(new(usecase.PreferenceStore), new(*fs.PreferenceStoreAdapter)),
)

// TerminalSet provides terminal capability detection
var TerminalSet = wire.NewSet(
	terminal.NewColorSchemeAdapter,
	wire.Bind(new(usecase.SystemTheme), new(*terminal.ColorSchemeAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.CaseSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides the RPC connection, contract reads and the transactor
var BlockchainSet = wire.NewSet(
	blockchain.Dial,
	wire.Bind(new(blockchain.Backend), new(*ethclient.Client)),
	blockchain.NewChainGuard,

	ProvideRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	blockchain.NewMetrics,

	blockchain.NewGateway,
	wire.Bind(new(usecase.CaseReader), new(*blockchain.Gateway)),
	wire.Bind(new(usecase.TokenReader), new(*blockchain.Gateway)),
	wire.Bind(new(usecase.VoterRegistry), new(*blockchain.Gateway)),

	blockchain.LoadSigner,
	blockchain.NewTransactor,
	wire.Bind(new(usecase.Transactor), new(*blockchain.Transactor)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	TerminalSet,
	InteractiveSet,
	BlockchainSet,
)
