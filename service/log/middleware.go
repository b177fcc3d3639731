package log

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ethereum/go-ethereum/log"

	"github.com/lendbit/token-faucet/service/httputil"
)

const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID returns the ID the logging middleware attached to the request context,
// or an empty string outside of a logged request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithRequestID attaches a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NewLoggingMiddleware logs every served request with its status, size and duration.
// A request ID is taken from the X-Request-Id header, or generated,
// and echoed back in the response.
func NewLoggingMiddleware(lgr log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ww := httputil.NewWrappedResponseWriter(w)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(WithRequestID(r.Context(), id)))
		lgr.Debug(
			"served HTTP request",
			"request_id", id,
			"status", ww.StatusCode,
			"response_len", ww.ResponseLen,
			"path", r.URL.EscapedPath(),
			"method", r.Method,
			"remote_addr", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}
