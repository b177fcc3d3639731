package metrics

import (
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

type NoopMetrics struct{}

func (n NoopMetrics) RecordInfo(version string) {}

func (n NoopMetrics) RecordUp() {}

func (n NoopMetrics) RecordRequest(variant string, status int) {}

func (n NoopMetrics) RecordProbe(chain ftypes.ChainKey, token ftypes.TokenSymbol, outcome string) {}

func (n NoopMetrics) RecordDispense(chain ftypes.ChainKey, token ftypes.TokenSymbol) (onDone func(err error)) {
	return func(err error) {}
}

var _ Metricer = NoopMetrics{}
