package bindings

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type fakeCaller struct {
	t      *testing.T
	parsed abi.ABI
	calls  []ethereum.CallMsg
	// results by method name
	results map[string][]any
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, call)
	method, err := f.parsed.MethodById(call.Data[:4])
	require.NoError(f.t, err)
	return method.Outputs.Pack(f.results[method.Name]...)
}

func TestTokenFaucetCaller(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(TokenFaucetABI))
	require.NoError(t, err)
	require.Len(t, parsed.Methods, 3)
	require.Equal(t, "0x7556b274", "0x"+common.Bytes2Hex(parsed.Methods["canRequestToken"].ID))
	require.Equal(t, "0x423cf6c3", "0x"+common.Bytes2Hex(parsed.Methods["timeUntilNextRequest"].ID))
	require.Equal(t, "0xd66187b4", "0x"+common.Bytes2Hex(parsed.Methods["requestTokens"].ID))

	fake := &fakeCaller{
		t:      t,
		parsed: parsed,
		results: map[string][]any{
			"canRequestToken":      {false},
			"timeUntilNextRequest": {big.NewInt(125)},
		},
	}
	faucetAddr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	user := common.HexToAddress("0x2222222222222222222222222222222222222222")

	caller, err := NewTokenFaucetCaller(faucetAddr, fake)
	require.NoError(t, err)

	opts := &bind.CallOpts{Context: context.Background()}
	ok, err := caller.CanRequestToken(opts, user, "WETH")
	require.NoError(t, err)
	require.False(t, ok)

	wait, err := caller.TimeUntilNextRequest(opts, user, "WETH")
	require.NoError(t, err)
	require.Equal(t, int64(125), wait.Int64())

	require.Len(t, fake.calls, 2)
	require.Equal(t, faucetAddr, *fake.calls[0].To)
	args, err := parsed.Methods["canRequestToken"].Inputs.Unpack(fake.calls[0].Data[4:])
	require.NoError(t, err)
	require.Equal(t, user, args[0])
	require.Equal(t, "WETH", args[1])
}
