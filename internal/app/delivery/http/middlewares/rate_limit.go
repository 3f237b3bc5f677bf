package middlewares

import (
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to App.MaxRequests per second and answers
// the overflow with the regular error page.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.BuildErrorResponse(m.Log, w, requestID, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
