package blockchain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction outcomes recorded by the transactor
const (
	OutcomeSubmitted = "submitted"
	OutcomeConfirmed = "confirmed"
	OutcomeReverted  = "reverted"
	OutcomeFailed    = "failed"
)

// Metrics holds the chain adapter counters
type Metrics struct {
	transactions *prometheus.CounterVec
	reads        *prometheus.CounterVec
}

// NewMetrics registers the counters on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbiter",
			Name:      "transactions_total",
			Help:      "Transactions by contract call and outcome",
		}, []string{"call", "outcome"}),
		reads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbiter",
			Name:      "contract_reads_total",
			Help:      "eth_call reads by method and result",
		}, []string{"method", "result"}),
	}
}

func (m *Metrics) transaction(call, outcome string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(call, outcome).Inc()
}

func (m *Metrics) read(method string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reads.WithLabelValues(method, result).Inc()
}
