package ui

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/ethereum/go-ethereum/common"

	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	"github.com/lendbit/token-faucet/faucet/frontend"
)

// RequestError is a non-2xx answer of the faucet HTTP API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Client talks to the faucet HTTP API.
type Client struct {
	rc *resty.Client
}

func NewClient(baseURL string) *Client {
	return newClient(resty.New(), baseURL)
}

// NewClientWithHTTP uses the given http.Client for all requests.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return newClient(resty.NewWithClient(hc), baseURL)
}

func newClient(rc *resty.Client, baseURL string) *Client {
	rc.SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var errResp frontend.ErrorResponse
	req := c.rc.R().SetContext(ctx).SetResult(result).SetError(&errResp)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := errResp.Error
		if msg == "" {
			msg = fmt.Sprintf("Failed to request tokens (HTTP %d)", resp.StatusCode())
		}
		return &RequestError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

// RequestTokens calls the multi-chain endpoint and returns the confirmed transaction hash.
func (c *Client) RequestTokens(ctx context.Context, chain ftypes.ChainKey, token ftypes.TokenSymbol, recipient string) (common.Hash, error) {
	var out frontend.SuccessResponse
	body := frontend.RequestBody{
		RecipientAddress: recipient,
		TokenSymbol:      token.String(),
		Chain:            chain.String(),
	}
	if err := c.do(ctx, http.MethodPost, "/api/request-tokens", body, &out); err != nil {
		return common.Hash{}, err
	}
	return out.TxHash, nil
}

func (c *Client) Networks(ctx context.Context) (*frontend.NetworksResponse, error) {
	var out frontend.NetworksResponse
	if err := c.do(ctx, http.MethodGet, "/api/networks", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WatchAssetParams(ctx context.Context, chain ftypes.ChainKey, token ftypes.TokenSymbol) (*frontend.WatchAssetParams, error) {
	var out frontend.WatchAssetParams
	path := "/api/tokens/" + token.String() + "/watch-asset?chain=" + chain.String()
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
