package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	opmetrics "github.com/lendbit/token-faucet/service/metrics"
)

const Namespace = "token_faucet"

type Metrics struct {
	ns       string
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	probes    *prometheus.CounterVec
	dispenses *prometheus.CounterVec

	dispenseDuration *prometheus.HistogramVec

	info *prometheus.GaugeVec
	up   prometheus.Gauge
}

var (
	_ Metricer                   = (*Metrics)(nil)
	_ opmetrics.RegistryMetricer = (*Metrics)(nil)
)

func NewMetrics(procName string) *Metrics {
	return newMetrics(procName, opmetrics.NewRegistry())
}

func newMetrics(procName string, registry *prometheus.Registry) *Metrics {
	if procName == "" {
		procName = "default"
	}
	ns := Namespace + "_" + procName

	factory := promauto.With(registry)
	return &Metrics{
		ns:       ns,
		registry: registry,

		info: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "info",
			Help:      "Pseudo-metric tracking version and config info",
		}, []string{
			"version",
		}),
		up: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "up",
			Help:      "1 if the faucet has finished starting up",
		}),

		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "requests_total",
			Help:      "Count of faucet requests, by endpoint and response status",
		}, []string{"variant", "status"}),

		probes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "eligibility_probes_total",
			Help:      "Count of eligibility probes against the faucet contract, by outcome",
		}, []string{"chain", "token", "outcome"}),

		dispenses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "dispense_txs_total",
			Help:      "Count of dispense txs",
		}, []string{"chain", "token", "err"}),

		dispenseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "dispense_duration_seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			Help:      "Duration it takes to submit and confirm a dispense tx",
		}, []string{"chain", "token"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordInfo sets a pseudo-metric that contains versioning and config info.
func (m *Metrics) RecordInfo(version string) {
	m.info.WithLabelValues(version).Set(1)
}

// RecordUp sets the up metric to 1.
func (m *Metrics) RecordUp() {
	m.up.Set(1)
}

func (m *Metrics) RecordRequest(variant string, status int) {
	m.requests.WithLabelValues(variant, strconv.Itoa(status)).Inc()
}

func (m *Metrics) RecordProbe(chain ftypes.ChainKey, token ftypes.TokenSymbol, outcome string) {
	m.probes.WithLabelValues(chain.String(), token.String(), outcome).Inc()
}

func (m *Metrics) RecordDispense(chain ftypes.ChainKey, token ftypes.TokenSymbol) (onDone func(err error)) {
	timer := prometheus.NewTimer(m.dispenseDuration.WithLabelValues(chain.String(), token.String()))
	return func(err error) {
		timer.ObserveDuration()
		errStr := "success"
		if err != nil {
			errStr = "failed"
		}
		m.dispenses.WithLabelValues(chain.String(), token.String(), errStr).Inc()
	}
}
