package backend

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// Dispatcher submits a dispense transaction and waits for it to be mined.
type Dispatcher interface {
	Dispense(ctx context.Context, req ftypes.TokenRequest) (common.Hash, error)
}

// WaitMinedFn blocks until tx is mined, or ctx is done.
type WaitMinedFn func(ctx context.Context, b bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error)

// ContractDispatcher calls requestTokens on the faucet contract. Failures are not retried.
type ContractDispatcher struct {
	chains    Chains
	waitMined WaitMinedFn
}

var _ Dispatcher = (*ContractDispatcher)(nil)

func NewContractDispatcher(chains Chains) *ContractDispatcher {
	return &ContractDispatcher{chains: chains, waitMined: bind.WaitMined}
}

func (d *ContractDispatcher) Dispense(ctx context.Context, req ftypes.TokenRequest) (common.Hash, error) {
	f, err := d.chains.Faucet(req.Chain)
	if err != nil {
		return common.Hash{}, err
	}
	opts, err := f.Signer.TransactOpts(ctx, f.ChainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: failed to create transactor: %w", ftypes.ErrDispatch, err)
	}
	tx, err := f.Transactor.RequestTokens(opts, req.Recipient, req.Token.String())
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: failed to send requestTokens: %w", ftypes.ErrDispatch, err)
	}
	receipt, err := d.waitMined(ctx, f.Receipts, tx)
	if err != nil {
		return tx.Hash(), fmt.Errorf("%w: failed to await tx %s: %w", ftypes.ErrDispatch, tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt.TxHash, fmt.Errorf("%w: tx %s reverted", ftypes.ErrDispatch, receipt.TxHash)
	}
	return receipt.TxHash, nil
}
