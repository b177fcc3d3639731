package ui

import (
	"context"
	"encoding/json"
	"io"

	"github.com/lendbit/token-faucet/faucet/frontend"
)

// watchAssetRequest is the EIP-747 request a wallet provider accepts.
type watchAssetRequest struct {
	Method string                    `json:"method"`
	Params frontend.WatchAssetParams `json:"params"`
}

// PayloadWatcher is a WalletWatcher for terminals without a wallet provider:
// it writes the wallet_watchAsset request for the user to submit themselves,
// and reports it as accepted once written.
type PayloadWatcher struct {
	w io.Writer
}

func NewPayloadWatcher(w io.Writer) *PayloadWatcher {
	return &PayloadWatcher{w: w}
}

func (p *PayloadWatcher) WatchAsset(ctx context.Context, params frontend.WatchAssetParams) (bool, error) {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(watchAssetRequest{Method: "wallet_watchAsset", Params: params}); err != nil {
		return false, err
	}
	return true, nil
}

var _ WalletWatcher = (*PayloadWatcher)(nil)
