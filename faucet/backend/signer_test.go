package backend

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/go-ethereum/common"
)

const (
	testMnemonic = "test test test test test test test test test test test junk"
	testKey      = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var testSignerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func TestNewSigner(t *testing.T) {
	t.Run("private key", func(t *testing.T) {
		s, err := NewSigner(SignerConfig{PrivateKey: testKey})
		require.NoError(t, err)
		require.Equal(t, testSignerAddr, s.Address())

		s, err = NewSigner(SignerConfig{PrivateKey: "0x" + testKey})
		require.NoError(t, err)
		require.Equal(t, testSignerAddr, s.Address())
	})
	t.Run("mnemonic", func(t *testing.T) {
		s, err := NewSigner(SignerConfig{Mnemonic: testMnemonic})
		require.NoError(t, err)
		require.Equal(t, testSignerAddr, s.Address())

		other, err := NewSigner(SignerConfig{Mnemonic: testMnemonic, HDPath: "m/44'/60'/0'/0/1"})
		require.NoError(t, err)
		require.NotEqual(t, testSignerAddr, other.Address())
	})
	t.Run("none", func(t *testing.T) {
		_, err := NewSigner(SignerConfig{})
		require.ErrorIs(t, err, ErrNoSigner)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := NewSigner(SignerConfig{PrivateKey: "0x1234"})
		require.ErrorContains(t, err, "invalid private key")
		_, err = NewSigner(SignerConfig{Mnemonic: "not a mnemonic"})
		require.ErrorContains(t, err, "invalid mnemonic")
		_, err = NewSigner(SignerConfig{PrivateKey: testKey, Mnemonic: testMnemonic})
		require.ErrorContains(t, err, "only one of")
	})
}

func TestSignerTransactOpts(t *testing.T) {
	s, err := NewSigner(SignerConfig{PrivateKey: testKey})
	require.NoError(t, err)
	ctx := context.Background()
	opts, err := s.TransactOpts(ctx, big.NewInt(84532))
	require.NoError(t, err)
	require.Equal(t, testSignerAddr, opts.From)
	require.Equal(t, ctx, opts.Context)
	require.NotNil(t, opts.Signer)
}
