package frontend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/cors"

	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/faucet/backend/config"
	ftypes "github.com/lendbit/token-faucet/faucet/backend/types"
	"github.com/lendbit/token-faucet/metrics"
	oplog "github.com/lendbit/token-faucet/service/log"
)

const (
	VariantSingle = "single"
	VariantMulti  = "multi"

	maxBodyBytes = 1 << 16
)

type FaucetBackend interface {
	RequestTokens(ctx context.Context, chain, token, recipient string) (*ftypes.Dispensed, error)
	CheckEligibility(ctx context.Context, chain, token, recipient string) (ftypes.EligibilityResult, error)
	Catalog() *config.Config
}

// HTTPFrontend serves the JSON endpoints of the faucet.
type HTTPFrontend struct {
	log     log.Logger
	m       metrics.Metricer
	b       FaucetBackend
	version string
}

func NewHTTPFrontend(logger log.Logger, m metrics.Metricer, b FaucetBackend, version string) *HTTPFrontend {
	return &HTTPFrontend{log: logger, m: m, b: b, version: version}
}

// Register adds the faucet routes to the mux.
// The single-chain endpoint is only registered when the catalog has a default chain.
func (f *HTTPFrontend) Register(mux *http.ServeMux) {
	if def, ok := f.b.Catalog().Default(); ok {
		f.log.Info("Serving single-chain faucet endpoint", "chain", def)
		mux.HandleFunc("POST /api/faucet", f.handleSingle(def))
	}
	mux.HandleFunc("POST /api/request-tokens", f.handleMulti)
	mux.HandleFunc("GET /api/networks", f.handleNetworks)
	mux.HandleFunc("GET /api/tokens/{symbol}/watch-asset", f.handleWatchAsset)
	mux.HandleFunc("GET /healthz", f.handleHealth)
}

func (f *HTTPFrontend) handleSingle(chain ftypes.ChainKey) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body RequestBody
		if err := decodeBody(w, r, &body); err != nil {
			f.reply(w, VariantSingle, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		out, err := f.b.RequestTokens(r.Context(), chain.String(), body.TokenSymbol, body.RecipientAddress)
		if err != nil {
			f.replyError(w, VariantSingle, chain.String(), err)
			return
		}
		f.reply(w, VariantSingle, http.StatusOK, SuccessResponse{Success: true, TxHash: out.TxHash})
	}
}

func (f *HTTPFrontend) handleMulti(w http.ResponseWriter, r *http.Request) {
	var body RequestBody
	if err := decodeBody(w, r, &body); err != nil {
		f.reply(w, VariantMulti, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	out, err := f.b.RequestTokens(r.Context(), body.Chain, body.TokenSymbol, body.RecipientAddress)
	if err != nil {
		f.replyError(w, VariantMulti, body.Chain, err)
		return
	}
	f.reply(w, VariantMulti, http.StatusOK, SuccessResponse{Success: true, TxHash: out.TxHash, Chain: out.Chain})
}

func (f *HTTPFrontend) handleNetworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NetworksView(f.b.Catalog()))
}

func (f *HTTPFrontend) handleWatchAsset(w http.ResponseWriter, r *http.Request) {
	chain := ftypes.ChainKey(r.URL.Query().Get("chain"))
	if chain == "" {
		def, ok := f.b.Catalog().Default()
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ftypes.ErrMissingParameters.Error()})
			return
		}
		chain = def
	}
	params, err := WatchAsset(f.b.Catalog(), chain, ftypes.TokenSymbol(r.PathValue("symbol")))
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, params)
}

func (f *HTTPFrontend) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": f.version})
}

// StatusFor maps a backend error to the HTTP status and the client-facing message.
// Only validation and cooldown errors expose their own text.
func StatusFor(chain string, err error) (int, string) {
	var cooldown *ftypes.CooldownError
	switch {
	case errors.Is(err, ftypes.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &cooldown):
		return http.StatusTooManyRequests, cooldown.Error()
	case errors.Is(err, ftypes.ErrConfiguration):
		return http.StatusInternalServerError, fmt.Sprintf("Faucet is not configured for %s", chain)
	case errors.Is(err, ftypes.ErrEligibilityCheck):
		return http.StatusInternalServerError, "Failed to check request eligibility"
	default:
		return http.StatusInternalServerError, "Failed to process token request"
	}
}

func (f *HTTPFrontend) replyError(w http.ResponseWriter, variant, chain string, err error) {
	status, msg := StatusFor(chain, err)
	var cooldown *ftypes.CooldownError
	if errors.As(err, &cooldown) {
		w.Header().Set("Retry-After", strconv.FormatUint(cooldown.WaitSeconds, 10))
	}
	f.reply(w, variant, status, ErrorResponse{Error: msg})
}

func (f *HTTPFrontend) reply(w http.ResponseWriter, variant string, status int, v any) {
	f.m.RecordRequest(variant, status)
	writeJSON(w, status, v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst *RequestBody) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &ftypes.ValidationError{Reason: "Invalid request body"}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NewHandler assembles the faucet HTTP handler: REST routes, the optional JSON-RPC
// endpoint at /rpc, CORS and request logging.
func NewHandler(logger log.Logger, f *HTTPFrontend, rpcHandler http.Handler, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()
	f.Register(mux)
	if rpcHandler != nil {
		mux.Handle("POST /rpc", rpcHandler)
	}
	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", oplog.RequestIDHeader},
		ExposedHeaders: []string{oplog.RequestIDHeader, "Retry-After"},
	})
	return oplog.NewLoggingMiddleware(logger, c.Handler(mux))
}
