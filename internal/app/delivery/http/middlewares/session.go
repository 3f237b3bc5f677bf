package middlewares

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/exceptions"
	"medibook-web/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Session makes sure every request carries a session id cookie and opens the
// session context for it. It never looks at who is logged in.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	sessionConfig := m.InternalConfig.Session
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		sessionID := ""
		if cookie, err := r.Cookie(sessionConfig.CookieName); err == nil {
			sessionID, err = utils.ParseSessionJWT(cookie.Value, sessionConfig.JWTSecret)
			if err != nil {
				m.Log.Warn("Middlewares.Session discarding invalid session cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(exceptions.ErrSessionTokenInvalid(err)),
				)
				sessionID = ""
			}
		}

		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			token, err := utils.GenerateSessionJWT(sessionID, sessionConfig.JWTSecret)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, requestID, exceptions.ErrSessionTokenGenerate(err))
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessionConfig.CookieName,
				Value:    token,
				Path:     constvars.RouteHome,
				HttpOnly: true,
				Secure:   sessionConfig.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			m.Log.Info("Middlewares.Session issued new session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, m.SessionService.Open(sessionID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFrom returns the session context the Session middleware stored.
func SessionFrom(ctx context.Context) (contracts.SessionContext, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(contracts.SessionContext)
	return session, ok
}
