package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainKey(t *testing.T) {
	var k ChainKey
	require.NoError(t, k.UnmarshalText([]byte("base-sepolia")))
	require.Equal(t, ChainKey("base-sepolia"), k)

	require.ErrorIs(t, k.UnmarshalText([]byte("")), ErrInvalidKey)
	require.ErrorIs(t, k.UnmarshalText([]byte("-leading-dash")), ErrInvalidKey)
	require.ErrorIs(t, k.UnmarshalText([]byte("has space")), ErrInvalidKey)
	require.ErrorIs(t, k.UnmarshalText([]byte(strings.Repeat("a", 65))), ErrInvalidKey)

	_, err := ChainKey("").MarshalText()
	require.ErrorIs(t, err, ErrInvalidKey)

	// map keys go through the text marshaling
	var m map[ChainKey]int
	require.NoError(t, json.Unmarshal([]byte(`{"sepolia":1}`), &m))
	require.Equal(t, 1, m["sepolia"])
	require.Error(t, json.Unmarshal([]byte(`{"bad key":1}`), &m))
}

func TestTokenSymbol(t *testing.T) {
	var s TokenSymbol
	require.NoError(t, s.UnmarshalText([]byte("WETH")))
	require.Equal(t, "WETH", s.String())
	require.ErrorIs(t, s.UnmarshalText([]byte("W ETH")), ErrInvalidKey)
	out, err := TokenSymbol("USDT").MarshalText()
	require.NoError(t, err)
	require.Equal(t, "USDT", string(out))
}

func TestWaitMinutes(t *testing.T) {
	cases := []struct {
		seconds uint64
		minutes uint64
	}{
		{0, 0},
		{1, 1},
		{59, 1},
		{60, 1},
		{61, 2},
		{125, 3},
		{3600, 60},
		{math.MaxUint64, math.MaxUint64/60 + 1},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.seconds), func(t *testing.T) {
			require.Equal(t, c.minutes, EligibilityResult{WaitSeconds: c.seconds}.WaitMinutes())
		})
	}
}

func TestErrors(t *testing.T) {
	require.ErrorIs(t, ErrMissingParameters, ErrValidation)
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", ErrInvalidAddress), ErrValidation)

	err := UnsupportedChain("mainnet")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, "Unsupported chain: mainnet", err.Error())
	require.Equal(t, "Unsupported token: DOGE on base-sepolia", UnsupportedToken("DOGE", "base-sepolia").Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Unsupported chain: mainnet", verr.Reason)

	cooldown := &CooldownError{Token: "LINK", Network: "Base Sepolia", WaitSeconds: 125}
	require.ErrorIs(t, cooldown, ErrCooldownActive)
	require.NotErrorIs(t, cooldown, ErrValidation)
	require.Equal(t, uint64(3), cooldown.WaitMinutes())
	require.Equal(t, "Please wait approximately 3 minutes before requesting LINK again on Base Sepolia.", cooldown.Error())
}
