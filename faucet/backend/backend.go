package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	"github.com/lendbit/token-faucet/metrics"
)

// Backend validates faucet requests against the catalog, probes eligibility and dispatches.
// It keeps no state between requests; the faucet contract is the only authority on cooldowns.
type Backend struct {
	log log.Logger
	m   metrics.Metricer

	catalog    *config.Config
	prober     Prober
	dispatcher Dispatcher

	onStop func()
}

func New(logger log.Logger, m metrics.Metricer, catalog *config.Config, prober Prober, dispatcher Dispatcher) *Backend {
	return &Backend{
		log:        logger,
		m:          m,
		catalog:    catalog,
		prober:     prober,
		dispatcher: dispatcher,
	}
}

// FromConfig dials the chains of the catalog and wires the contract prober and dispatcher.
// A missing signer is not fatal: requests then fail with a configuration error.
func FromConfig(ctx context.Context, logger log.Logger, m metrics.Metricer, catalog *config.Config, signerCfg SignerConfig) (*Backend, error) {
	if err := catalog.Check(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	signer, err := NewSigner(signerCfg)
	if errors.Is(err, ErrNoSigner) {
		logger.Warn("No faucet signer configured, dispensing is disabled")
	} else if err != nil {
		return nil, fmt.Errorf("failed to load signer: %w", err)
	} else {
		logger.Info("Loaded faucet signer", "address", signer.Address())
	}
	chains, err := DialChains(ctx, logger, catalog, signer)
	if err != nil {
		return nil, err
	}
	b := New(logger, m, catalog, NewContractProber(chains), NewContractDispatcher(chains))
	b.onStop = chains.Close
	return b, nil
}

func (b *Backend) Catalog() *config.Config {
	return b.catalog
}

// validate runs the request checks in order, so the first failing check determines the error.
func (b *Backend) validate(chain, token, recipient string) (ftypes.TokenRequest, error) {
	if chain == "" || token == "" || recipient == "" {
		return ftypes.TokenRequest{}, ftypes.ErrMissingParameters
	}
	chainKey := ftypes.ChainKey(chain)
	if !b.catalog.HasNetwork(chainKey) {
		return ftypes.TokenRequest{}, ftypes.UnsupportedChain(chain)
	}
	sym := ftypes.TokenSymbol(token)
	if !b.catalog.SupportsToken(chainKey, sym) {
		return ftypes.TokenRequest{}, ftypes.UnsupportedToken(sym, chainKey)
	}
	if !ValidAddress(recipient) {
		return ftypes.TokenRequest{}, ftypes.ErrInvalidAddress
	}
	return ftypes.TokenRequest{
		Chain:     chainKey,
		Token:     sym,
		Recipient: common.HexToAddress(recipient),
	}, nil
}

func (b *Backend) probe(ctx context.Context, logger log.Logger, req ftypes.TokenRequest) (ftypes.EligibilityResult, error) {
	res, err := b.prober.Probe(ctx, req)
	switch {
	case errors.Is(err, ftypes.ErrConfiguration):
		b.m.RecordProbe(req.Chain, req.Token, metrics.ProbeError)
		logger.Error("Faucet is misconfigured", "err", err)
		return res, err
	case err != nil:
		b.m.RecordProbe(req.Chain, req.Token, metrics.ProbeError)
		logger.Warn("Failed to check request eligibility", "err", err)
		if !errors.Is(err, ftypes.ErrEligibilityCheck) {
			err = fmt.Errorf("%w: %w", ftypes.ErrEligibilityCheck, err)
		}
		return res, err
	case !res.Allowed:
		b.m.RecordProbe(req.Chain, req.Token, metrics.ProbeCooldown)
	default:
		b.m.RecordProbe(req.Chain, req.Token, metrics.ProbeAllowed)
	}
	return res, nil
}

// CheckEligibility validates the request and probes the faucet contract, without dispensing.
func (b *Backend) CheckEligibility(ctx context.Context, chain, token, recipient string) (ftypes.EligibilityResult, error) {
	req, err := b.validate(chain, token, recipient)
	if err != nil {
		return ftypes.EligibilityResult{}, err
	}
	logger := b.log.New("chain", req.Chain, "token", req.Token, "recipient", req.Recipient)
	return b.probe(ctx, logger, req)
}

// RequestTokens serves one faucet request: validate, probe, dispatch and await confirmation.
// The dispense tx is only submitted after the probe of this same request allowed it.
func (b *Backend) RequestTokens(ctx context.Context, chain, token, recipient string) (*ftypes.Dispensed, error) {
	req, err := b.validate(chain, token, recipient)
	if err != nil {
		return nil, err
	}
	logger := b.log.New("chain", req.Chain, "token", req.Token, "recipient", req.Recipient)

	res, err := b.probe(ctx, logger, req)
	if err != nil {
		return nil, err
	}
	if !res.Allowed {
		network, _ := b.catalog.Network(req.Chain)
		logger.Debug("Recipient is in cooldown", "wait_seconds", res.WaitSeconds)
		return nil, &ftypes.CooldownError{
			Token:       req.Token,
			Network:     network.Name,
			WaitSeconds: res.WaitSeconds,
		}
	}

	onDone := b.m.RecordDispense(req.Chain, req.Token)
	txHash, err := b.dispatcher.Dispense(ctx, req)
	onDone(err)
	if err != nil {
		logger.Error("Failed to dispense tokens", "err", err)
		if !errors.Is(err, ftypes.ErrDispatch) && !errors.Is(err, ftypes.ErrConfiguration) {
			err = fmt.Errorf("%w: %w", ftypes.ErrDispatch, err)
		}
		return nil, err
	}
	logger.Info("Dispensed tokens", "tx", txHash)
	return &ftypes.Dispensed{TxHash: txHash, Chain: req.Chain}, nil
}

func (b *Backend) Stop(ctx context.Context) error {
	if b.onStop != nil {
		b.onStop()
	}
	return nil
}
