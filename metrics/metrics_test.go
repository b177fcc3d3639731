package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	opmetrics "github.com/lendbit/token-faucet/service/metrics"
)

func TestFaucetMetrics(t *testing.T) {
	m := NewMetrics("")

	version := "v3.4.5"
	m.RecordInfo(version)
	m.RecordUp()

	chainX := ftypes.ChainKey("base-sepolia")
	chainY := ftypes.ChainKey("sepolia")
	weth := ftypes.TokenSymbol("WETH")

	m.RecordRequest("multi", 200)
	m.RecordRequest("multi", 200)
	m.RecordRequest("single", 429)

	m.RecordProbe(chainX, weth, ProbeAllowed)
	m.RecordProbe(chainX, weth, ProbeAllowed)
	m.RecordProbe(chainY, weth, ProbeCooldown)

	onDone := m.RecordDispense(chainX, weth)
	time.Sleep(time.Millisecond)
	onDone(nil)
	onDone = m.RecordDispense(chainX, weth)
	onDone(nil)
	onDone = m.RecordDispense(chainY, weth)
	onDone(errors.New("test err"))

	c := opmetrics.NewMetricChecker(t, m.Registry())

	prefix := Namespace + "_default_"

	record := c.FindByName(prefix + "requests_total").FindByLabels(map[string]string{"variant": "multi", "status": "200"})
	require.Equal(t, 2.0, record.Counter.GetValue())
	record = c.FindByName(prefix + "requests_total").FindByLabels(map[string]string{"variant": "single", "status": "429"})
	require.Equal(t, 1.0, record.Counter.GetValue())

	record = c.FindByName(prefix + "eligibility_probes_total").FindByLabels(map[string]string{
		"chain": chainX.String(), "token": "WETH", "outcome": ProbeAllowed,
	})
	require.Equal(t, 2.0, record.Counter.GetValue())

	labelsX := map[string]string{"chain": chainX.String(), "token": "WETH"}
	record = c.FindByName(prefix + "dispense_txs_total").FindByLabels(map[string]string{
		"chain": chainX.String(), "token": "WETH", "err": "success",
	})
	require.Equal(t, 2.0, record.Counter.GetValue())
	record = c.FindByName(prefix + "dispense_duration_seconds").FindByLabels(labelsX)
	require.Equal(t, uint64(2), record.Histogram.GetSampleCount())
	require.NotZero(t, record.Histogram.GetSampleSum())

	record = c.FindByName(prefix + "dispense_txs_total").FindByLabels(map[string]string{
		"chain": chainY.String(), "err": "failed",
	})
	require.Equal(t, 1.0, record.Counter.GetValue())

	record = c.FindByName(prefix + "up").FindByLabels(nil)
	require.Equal(t, 1.0, record.Gauge.GetValue())

	record = c.FindByName(prefix + "info").FindByLabels(map[string]string{"version": version})
	require.Equal(t, 1.0, record.Gauge.GetValue())
}

func TestNoopMetrics(t *testing.T) {
	m := &NoopMetrics{}
	m.RecordInfo("1234")
	m.RecordUp()
	m.RecordRequest("multi", 500)
	m.RecordProbe("base-sepolia", "WETH", ProbeError)
	onDone := m.RecordDispense("base-sepolia", "WETH")
	onDone(errors.New("test err"))
}
