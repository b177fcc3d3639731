package types

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a request that is malformed or names unknown catalog entries.
	ErrValidation = errors.New("invalid request")
	// ErrConfiguration marks a chain that lacks an RPC endpoint, faucet address or signer.
	ErrConfiguration = errors.New("faucet not configured")
	// ErrEligibilityCheck marks a failed call to one of the contract's view methods.
	ErrEligibilityCheck = errors.New("eligibility check failed")
	// ErrCooldownActive marks a recipient that has to wait before requesting again.
	ErrCooldownActive = errors.New("cooldown active")
	// ErrDispatch marks a dispense transaction that failed to submit, confirm or succeed.
	ErrDispatch = errors.New("dispatch failed")
)

// ValidationError carries the client-facing reason a request was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrMissingParameters = &ValidationError{Reason: "Missing required parameters"}
	ErrInvalidAddress    = &ValidationError{Reason: "Invalid recipient address"}
)

func UnsupportedChain(chain string) error {
	return &ValidationError{Reason: fmt.Sprintf("Unsupported chain: %s", chain)}
}

func UnsupportedToken(token TokenSymbol, chain ChainKey) error {
	return &ValidationError{Reason: fmt.Sprintf("Unsupported token: %s on %s", token, chain)}
}

// CooldownError reports the remaining cooldown of a recipient for a token.
type CooldownError struct {
	Token       TokenSymbol
	Network     string
	WaitSeconds uint64
}

func (e *CooldownError) WaitMinutes() uint64 {
	return EligibilityResult{WaitSeconds: e.WaitSeconds}.WaitMinutes()
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("Please wait approximately %d minutes before requesting %s again on %s.",
		e.WaitMinutes(), e.Token, e.Network)
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}
