package http

import (
	"context"
	"net/http"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

// withLogging writes one access log line per request. The identity is only
// known for routes behind auth, so it is read after the handler returns.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		var identity int64
		next.ServeHTTP(lw, r.WithContext(withIdentitySink(r.Context(), &identity)))

		event := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if identity != 0 {
			event = event.Int64("identity", identity)
		}
		event.Send()
	})
}

// identitySinkKey carries a pointer the auth middleware fills in so the
// access log can name the caller.
type identitySinkKey struct{}

func withIdentitySink(ctx context.Context, sink *int64) context.Context {
	return context.WithValue(ctx, identitySinkKey{}, sink)
}

func reportIdentity(ctx context.Context, identity int64) {
	if sink, ok := ctx.Value(identitySinkKey{}).(*int64); ok {
		*sink = identity
	}
}
