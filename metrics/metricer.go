package metrics

import (
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// Probe outcomes, as recorded by RecordProbe.
const (
	ProbeAllowed  = "allowed"
	ProbeCooldown = "cooldown"
	ProbeError    = "error"
)

type Metricer interface {
	RecordInfo(version string)
	RecordUp()

	// RecordRequest counts a served faucet request by endpoint variant and HTTP status.
	RecordRequest(variant string, status int)
	RecordProbe(chain ftypes.ChainKey, token ftypes.TokenSymbol, outcome string)
	RecordDispense(chain ftypes.ChainKey, token ftypes.TokenSymbol) (onDone func(err error))
}
