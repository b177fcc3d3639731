package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/faucet/backend"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	"github.com/lendbit/token-faucet/faucet/frontend"
)

const (
	MsgInvalidAddress = "Please enter a valid Ethereum address"
	MsgNoWallet       = "No Web3 wallet detected. Please install MetaMask."
)

var ErrUnknownChain = errors.New("unknown chain")

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusPending
	StatusSuccess
	StatusCooldown
	StatusError
)

func (k StatusKind) String() string {
	switch k {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusCooldown:
		return "cooldown"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
}

// Status is the message shown under the form.
type Status struct {
	Kind    StatusKind
	Message string
	Token   ftypes.TokenSymbol

	// set on success
	TxHash      common.Hash
	ExplorerURL string

	// set on cooldown
	WaitMinutes uint64
}

// Requester is the faucet the form talks to, e.g. its HTTP API.
// It dispenses tokens and resolves the wallet_watchAsset parameters of a token.
type Requester interface {
	RequestTokens(ctx context.Context, chain ftypes.ChainKey, token ftypes.TokenSymbol, recipient string) (common.Hash, error)
	WatchAssetParams(ctx context.Context, chain ftypes.ChainKey, token ftypes.TokenSymbol) (*frontend.WatchAssetParams, error)
}

// WalletWatcher is an optional wallet capability that adds a token to the user's wallet.
// It reports whether the user accepted.
type WalletWatcher interface {
	WatchAsset(ctx context.Context, params frontend.WatchAssetParams) (bool, error)
}

var cooldownPattern = regexp.MustCompile(`approximately (\d+) minutes`)

// ParseCooldown extracts the wait in minutes from a cooldown message of the faucet.
func ParseCooldown(msg string) (uint64, bool) {
	m := cooldownPattern.FindStringSubmatch(msg)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExplorerTxURL links a transaction on a block explorer.
func ExplorerTxURL(explorer string, tx common.Hash) string {
	if explorer == "" {
		return ""
	}
	return strings.TrimRight(explorer, "/") + "/tx/" + tx.Hex()
}

// Form is the state of the faucet form: a chain selector, an address field
// and one request action per token of the selected chain.
// It is safe for concurrent use.
type Form struct {
	log       log.Logger
	catalog   *frontend.NetworksResponse
	requester Requester
	wallet    WalletWatcher

	mu           sync.Mutex
	chain        *frontend.NetworkView
	address      string
	addressValid bool
	pending      map[ftypes.TokenSymbol]bool
	adding       map[ftypes.TokenSymbol]bool
	status       Status

	bg sync.WaitGroup
}

// NewForm creates a form on the catalog's default chain, or its first chain.
// logger and wallet may be nil.
func NewForm(logger log.Logger, catalog *frontend.NetworksResponse, requester Requester, wallet WalletWatcher) *Form {
	if logger == nil {
		logger = log.Root()
	}
	f := &Form{
		log:       logger,
		catalog:   catalog,
		requester: requester,
		wallet:    wallet,
		pending:   make(map[ftypes.TokenSymbol]bool),
		adding:    make(map[ftypes.TokenSymbol]bool),
	}
	if len(catalog.Networks) > 0 {
		f.chain = &catalog.Networks[0]
	}
	if catalog.DefaultChain != "" {
		_ = f.SelectChain(catalog.DefaultChain)
	}
	return f
}

func (f *Form) SelectChain(key ftypes.ChainKey) error {
	for i := range f.catalog.Networks {
		if f.catalog.Networks[i].Key == key {
			f.mu.Lock()
			f.chain = &f.catalog.Networks[i]
			f.status = Status{}
			f.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownChain, key)
}

// Chain returns the selected network, or nil if the catalog is empty.
func (f *Form) Chain() *frontend.NetworkView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chain
}

// SetAddress updates the address field. Surrounding whitespace is trimmed.
func (f *Form) SetAddress(addr string) {
	addr = strings.TrimSpace(addr)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.address = addr
	f.addressValid = backend.ValidAddress(addr)
}

func (f *Form) Address() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.address, f.addressValid
}

// AddressHint is the message shown under a non-empty invalid address.
func (f *Form) AddressHint() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.address != "" && !f.addressValid {
		return MsgInvalidAddress
	}
	return ""
}

// Tokens lists the tokens offered on the selected chain.
func (f *Form) Tokens() []frontend.TokenView {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chain == nil {
		return nil
	}
	return f.chain.Tokens
}

func (f *Form) token(sym ftypes.TokenSymbol) (frontend.TokenView, bool) {
	if f.chain == nil {
		return frontend.TokenView{}, false
	}
	for _, t := range f.chain.Tokens {
		if t.Symbol == sym {
			return t, true
		}
	}
	return frontend.TokenView{}, false
}

// CanRequest reports whether the request action of the token is enabled.
func (f *Form) CanRequest(sym ftypes.TokenSymbol) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.token(sym)
	return ok && f.addressValid && !f.pending[sym]
}

// Pending reports whether a request for the token is in flight.
func (f *Form) Pending(sym ftypes.TokenSymbol) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending[sym]
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) setStatus(s Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = s
}

// Request asks the faucet for the token and blocks until the request completes.
// The outcome is reported through Status.
func (f *Form) Request(ctx context.Context, sym ftypes.TokenSymbol) Status {
	f.mu.Lock()
	if !f.addressValid {
		f.status = Status{Kind: StatusError, Message: MsgInvalidAddress, Token: sym}
		f.mu.Unlock()
		return f.Status()
	}
	tok, ok := f.token(sym)
	if !ok || f.pending[sym] {
		st := f.status
		f.mu.Unlock()
		return st
	}
	chain := f.chain
	addr := f.address
	f.pending[sym] = true
	f.status = Status{Kind: StatusPending, Message: fmt.Sprintf("Requesting %s...", sym), Token: sym}
	f.mu.Unlock()

	txHash, err := f.requester.RequestTokens(ctx, chain.Key, sym, addr)

	var st Status
	if err != nil {
		f.log.Debug("Token request failed", "chain", chain.Key, "token", sym, "err", err)
		st = Status{Kind: StatusError, Message: fmt.Sprintf("Failed to request %s. %s", sym, err.Error()), Token: sym}
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusTooManyRequests {
			st.Kind = StatusCooldown
			st.WaitMinutes, _ = ParseCooldown(reqErr.Message)
		}
	} else {
		st = Status{
			Kind:        StatusSuccess,
			Message:     fmt.Sprintf("Successfully sent %s %s to your address!", tok.Amount, sym),
			Token:       sym,
			TxHash:      txHash,
			ExplorerURL: ExplorerTxURL(chain.BlockExplorer, txHash),
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, sym)
	f.status = st
	return st
}

// AddToWallet asks the wallet to watch the token, without waiting for the answer.
// The token parameters are resolved through the requester.
func (f *Form) AddToWallet(ctx context.Context, sym ftypes.TokenSymbol) {
	if f.wallet == nil {
		f.setStatus(Status{Kind: StatusError, Message: MsgNoWallet, Token: sym})
		return
	}
	f.mu.Lock()
	if _, ok := f.token(sym); !ok || f.adding[sym] {
		f.mu.Unlock()
		return
	}
	chain := f.chain.Key
	f.adding[sym] = true
	f.mu.Unlock()

	f.bg.Add(1)
	go func() {
		defer f.bg.Done()
		var added bool
		params, err := f.requester.WatchAssetParams(ctx, chain, sym)
		if err == nil {
			added, err = f.wallet.WatchAsset(ctx, *params)
		}
		var st Status
		switch {
		case err != nil:
			st = Status{Kind: StatusError, Message: fmt.Sprintf("Error adding %s to wallet: %s", sym, err.Error()), Token: sym}
		case added:
			st = Status{Kind: StatusSuccess, Message: fmt.Sprintf("%s was successfully added to your wallet", sym), Token: sym}
		default:
			st = Status{Kind: StatusError, Message: fmt.Sprintf("Failed to add %s to your wallet", sym), Token: sym}
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.adding, sym)
		f.status = st
	}()
}

// Wait blocks until all background wallet interactions have finished.
func (f *Form) Wait() {
	f.bg.Wait()
}
