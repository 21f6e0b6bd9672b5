package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

// auditLogMiddleware records every request against the audit stream: who
// called, what they sent, what came back. It wraps the auth middleware so
// unauthorized attempts are captured too.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.UserID = username
		}

		if strings.HasPrefix(r.URL.Path, "/orders/") {
			parts := strings.Split(r.URL.Path, "/")
			if len(parts) > 2 {
				entry.OrderID = parts[2]
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		entry.StatusCode = rec.StatusCode()
		entry.Response = string(rec.Body())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func handlerName(path string, method string) string {
	switch {
	case path == "/items":
		return "handleListItems"
	case path == "/cart" && method == http.MethodGet:
		return "handleGetCart"
	case strings.HasPrefix(path, "/cart/"):
		return "handleUpdateCart"
	case path == "/orders" && method == http.MethodPost:
		return "handlePlaceOrder"
	case path == "/orders" && method == http.MethodGet:
		return "handleListOrders"
	case strings.HasSuffix(path, "/claim"):
		return "handleClaimOrder"
	case strings.HasSuffix(path, "/decline"):
		return "handleDeclineOrder"
	case strings.HasSuffix(path, "/cancel"):
		return "handleCancelOrder"
	case strings.Contains(path, "/timeline") && method == http.MethodPost:
		return "handleSetTimelineStep"
	case strings.Contains(path, "/timeline"):
		return "handleGetTimeline"
	case strings.HasPrefix(path, "/orders/"):
		return "handleGetOrder"
	case path == "/me":
		return "handleMe"
	case path == "/me/orders":
		return "handleMyOrders"
	case path == "/me/deliveries":
		return "handleMyDeliveries"
	case path == "/healthz":
		return "handleHealthz"
	}
	return "unknown"
}
