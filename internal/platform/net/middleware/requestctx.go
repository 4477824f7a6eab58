package middleware

import (
	"net/http"

	"frontdesk/internal/platform/logger"
	pnet "frontdesk/internal/platform/net"
)

// RequestContext annotates the request context with the request id and a
// request scoped logger so downstream code can use logger.C(ctx)
// mount after RequestID so the id is already present
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := pnet.RequestID(ctx)
		ctx = pnet.WithRequest(ctx, reqID)
		ctx = logger.WithRequest(ctx, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
