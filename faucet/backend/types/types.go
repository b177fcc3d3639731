package types

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidKey = errors.New("invalid key")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ChainKey identifies a network in the catalog, e.g. "base-sepolia".
// It is the value clients send as "chain".
type ChainKey string

func (k ChainKey) String() string {
	return string(k)
}

func (k ChainKey) MarshalText() ([]byte, error) {
	if !keyPattern.MatchString(string(k)) {
		return nil, ErrInvalidKey
	}
	return []byte(k), nil
}

func (k *ChainKey) UnmarshalText(data []byte) error {
	if !keyPattern.Match(data) {
		return ErrInvalidKey
	}
	*k = ChainKey(data)
	return nil
}

// TokenSymbol identifies a token in the catalog, e.g. "WETH".
// The symbol is passed verbatim to the faucet contract, so it is case-sensitive.
type TokenSymbol string

func (s TokenSymbol) String() string {
	return string(s)
}

func (s TokenSymbol) MarshalText() ([]byte, error) {
	if !keyPattern.MatchString(string(s)) {
		return nil, ErrInvalidKey
	}
	return []byte(s), nil
}

func (s *TokenSymbol) UnmarshalText(data []byte) error {
	if !keyPattern.Match(data) {
		return ErrInvalidKey
	}
	*s = TokenSymbol(data)
	return nil
}

// TokenRequest is a validated request to dispense one token on one chain.
type TokenRequest struct {
	Chain     ChainKey
	Token     TokenSymbol
	Recipient common.Address
}

// EligibilityResult is the outcome of probing the faucet contract for a request.
// WaitSeconds is only meaningful when Allowed is false.
type EligibilityResult struct {
	Allowed     bool
	WaitSeconds uint64
}

// WaitMinutes is WaitSeconds rounded up to whole minutes.
func (e EligibilityResult) WaitMinutes() uint64 {
	m := e.WaitSeconds / 60
	if e.WaitSeconds%60 != 0 {
		m++
	}
	return m
}

// Dispensed describes a confirmed dispense transaction.
type Dispensed struct {
	TxHash common.Hash
	Chain  ChainKey
}
