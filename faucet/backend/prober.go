package backend

import (
	"context"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// Prober asks the faucet contract whether a request may be served now.
type Prober interface {
	Probe(ctx context.Context, req ftypes.TokenRequest) (ftypes.EligibilityResult, error)
}

// ContractProber probes with the contract's view methods.
// It holds no state between calls: every request is probed afresh.
type ContractProber struct {
	chains Chains
}

var _ Prober = (*ContractProber)(nil)

func NewContractProber(chains Chains) *ContractProber {
	return &ContractProber{chains: chains}
}

func (p *ContractProber) Probe(ctx context.Context, req ftypes.TokenRequest) (ftypes.EligibilityResult, error) {
	f, err := p.chains.Faucet(req.Chain)
	if err != nil {
		return ftypes.EligibilityResult{}, err
	}
	opts := &bind.CallOpts{Context: ctx}
	symbol := req.Token.String()
	ok, err := f.Caller.CanRequestToken(opts, req.Recipient, symbol)
	if err != nil {
		return ftypes.EligibilityResult{}, fmt.Errorf("%w: canRequestToken: %w", ftypes.ErrEligibilityCheck, err)
	}
	if ok {
		return ftypes.EligibilityResult{Allowed: true}, nil
	}
	wait, err := f.Caller.TimeUntilNextRequest(opts, req.Recipient, symbol)
	if err != nil {
		return ftypes.EligibilityResult{}, fmt.Errorf("%w: timeUntilNextRequest: %w", ftypes.ErrEligibilityCheck, err)
	}
	secs := uint64(math.MaxUint64)
	if wait == nil || wait.Sign() < 0 {
		secs = 0
	} else if wait.IsUint64() {
		secs = wait.Uint64()
	}
	return ftypes.EligibilityResult{Allowed: false, WaitSeconds: secs}, nil
}
