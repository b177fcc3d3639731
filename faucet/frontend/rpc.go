package frontend

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// JSON-RPC error codes of the faucet namespace.
const (
	CodeInvalidRequest = -32602
	CodeCooldown       = -38001
	CodeUnavailable    = -38002
	CodeInternal       = -32603
)

// RPCError carries the HTTP-equivalent message and, for cooldowns, the wait in seconds.
type RPCError struct {
	Code    int
	Message string
	Data    any
}

func (e *RPCError) Error() string  { return e.Message }
func (e *RPCError) ErrorCode() int { return e.Code }
func (e *RPCError) ErrorData() any { return e.Data }

var (
	_ rpc.Error     = (*RPCError)(nil)
	_ rpc.DataError = (*RPCError)(nil)
)

// RPCFrontend exposes the faucet as the "faucet" JSON-RPC namespace.
type RPCFrontend struct {
	b FaucetBackend
}

func NewRPCFrontend(b FaucetBackend) *RPCFrontend {
	return &RPCFrontend{b: b}
}

// API returns the namespace descriptor to register with an rpc.Server.
func (f *RPCFrontend) API() rpc.API {
	return rpc.API{Namespace: "faucet", Service: f}
}

func (f *RPCFrontend) RequestTokens(ctx context.Context, chain string, token string, address string) (common.Hash, error) {
	out, err := f.b.RequestTokens(ctx, chain, token, address)
	if err != nil {
		return common.Hash{}, toRPCError(chain, err)
	}
	return out.TxHash, nil
}

func (f *RPCFrontend) CheckEligibility(ctx context.Context, chain string, token string, address string) (*EligibilityView, error) {
	res, err := f.b.CheckEligibility(ctx, chain, token, address)
	if err != nil {
		return nil, toRPCError(chain, err)
	}
	return &EligibilityView{
		Allowed:     res.Allowed,
		WaitSeconds: res.WaitSeconds,
		WaitMinutes: res.WaitMinutes(),
	}, nil
}

func (f *RPCFrontend) Networks(ctx context.Context) (NetworksResponse, error) {
	return NetworksView(f.b.Catalog()), nil
}

func toRPCError(chain string, err error) error {
	_, msg := StatusFor(chain, err)
	var cooldown *ftypes.CooldownError
	switch {
	case errors.Is(err, ftypes.ErrValidation):
		return &RPCError{Code: CodeInvalidRequest, Message: msg}
	case errors.As(err, &cooldown):
		return &RPCError{Code: CodeCooldown, Message: msg, Data: cooldown.WaitSeconds}
	case errors.Is(err, ftypes.ErrConfiguration):
		return &RPCError{Code: CodeUnavailable, Message: msg}
	default:
		return &RPCError{Code: CodeInternal, Message: msg}
	}
}
