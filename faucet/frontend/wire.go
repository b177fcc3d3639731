package frontend

import (
	"github.com/ethereum/go-ethereum/common"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// RequestBody is the JSON body of the faucet endpoints.
// Chain is ignored by the single-chain endpoint.
type RequestBody struct {
	RecipientAddress string `json:"recipientAddress"`
	TokenSymbol      string `json:"tokenSymbol"`
	Chain            string `json:"chain,omitempty"`
}

type SuccessResponse struct {
	Success bool            `json:"success"`
	TxHash  common.Hash     `json:"txHash"`
	Chain   ftypes.ChainKey `json:"chain,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NetworkView is the public part of a network entry. The RPC URL is never exposed.
type NetworkView struct {
	Key               ftypes.ChainKey `json:"key"`
	Name              string          `json:"name"`
	ChainID           uint64          `json:"chainId"`
	BlockExplorer     string          `json:"blockExplorer,omitempty"`
	BlockExplorerName string          `json:"blockExplorerName,omitempty"`
	Tokens            []TokenView     `json:"tokens"`
}

type TokenView struct {
	Symbol   ftypes.TokenSymbol `json:"symbol"`
	Name     string             `json:"name"`
	Decimals uint8              `json:"decimals"`
	Amount   string             `json:"amount"`
	Address  common.Address     `json:"address"`
	Icon     string             `json:"icon,omitempty"`
	Color    string             `json:"color,omitempty"`
	LogoURI  string             `json:"logoURI,omitempty"`
}

type NetworksResponse struct {
	DefaultChain ftypes.ChainKey `json:"defaultChain,omitempty"`
	Networks     []NetworkView   `json:"networks"`
}

// WatchAssetParams are the parameters of a wallet_watchAsset request.
type WatchAssetParams struct {
	Type    string           `json:"type"`
	Options WatchAssetOption `json:"options"`
}

type WatchAssetOption struct {
	Address  common.Address     `json:"address"`
	Symbol   ftypes.TokenSymbol `json:"symbol"`
	Decimals uint8              `json:"decimals"`
	Image    string             `json:"image,omitempty"`
}

// EligibilityView is the JSON form of an eligibility probe.
type EligibilityView struct {
	Allowed     bool   `json:"allowed"`
	WaitSeconds uint64 `json:"waitSeconds"`
	WaitMinutes uint64 `json:"waitMinutes"`
}
