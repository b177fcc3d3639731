package frontend

import (
	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
)

// NetworksView lists the catalog in the form the presentation layer consumes.
// Networks and their tokens are sorted by key.
func NetworksView(cfg *config.Config) NetworksResponse {
	out := NetworksResponse{Networks: []NetworkView{}}
	if def, ok := cfg.Default(); ok {
		out.DefaultChain = def
	}
	for _, key := range cfg.NetworkKeys() {
		n, ok := cfg.Network(key)
		if !ok {
			continue
		}
		view := NetworkView{
			Key:               key,
			Name:              n.Name,
			ChainID:           n.ChainID,
			BlockExplorer:     n.BlockExplorer,
			BlockExplorerName: n.BlockExplorerName,
			Tokens:            []TokenView{},
		}
		for _, sym := range cfg.TokensFor(key) {
			tok, _ := cfg.Token(sym)
			view.Tokens = append(view.Tokens, TokenView{
				Symbol:   sym,
				Name:     tok.Name,
				Decimals: tok.Decimals,
				Amount:   tok.Amount,
				Address:  tok.Addresses[key],
				Icon:     tok.Icon,
				Color:    tok.Color,
				LogoURI:  tok.LogoURI,
			})
		}
		out.Networks = append(out.Networks, view)
	}
	return out
}

// WatchAsset builds the wallet_watchAsset parameters of a token on a chain.
func WatchAsset(cfg *config.Config, chain ftypes.ChainKey, sym ftypes.TokenSymbol) (WatchAssetParams, error) {
	if !cfg.HasNetwork(chain) {
		return WatchAssetParams{}, ftypes.UnsupportedChain(chain.String())
	}
	if !cfg.SupportsToken(chain, sym) {
		return WatchAssetParams{}, ftypes.UnsupportedToken(sym, chain)
	}
	tok, _ := cfg.Token(sym)
	return WatchAssetParams{
		Type: "ERC20",
		Options: WatchAssetOption{
			Address:  tok.Addresses[chain],
			Symbol:   sym,
			Decimals: tok.Decimals,
			Image:    tok.LogoURI,
		},
	}, nil
}
