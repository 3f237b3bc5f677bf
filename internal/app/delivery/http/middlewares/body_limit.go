package middlewares

import (
	"net/http"
)

const megabyte = 1 << 20

// BodyLimit caps posted form bodies. ParseForm reports the overflow and the
// page renders it as a bad request.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * megabyte
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
