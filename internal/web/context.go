package web

import (
	"net/http"

	"github.com/JonMunkholm/explore/internal/core"
	"github.com/JonMunkholm/explore/internal/logging"
)

// sessions attaches the caller's session id to the request context,
// creating a session and setting the cookie on first visit or after expiry.
func (s *Server) sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var current string
		if c, err := r.Cookie(s.cfg.Session.CookieName); err == nil {
			current = c.Value
		}

		id, created := s.service.EnsureSession(current)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     s.cfg.Session.CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.cfg.Session.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			logging.FromContext(r.Context()).Debug("session created", "session_id", id)
		}

		next.ServeHTTP(w, r.WithContext(core.ContextWithSessionID(r.Context(), id)))
	})
}

// sessionID returns the id set by the sessions middleware.
func sessionID(r *http.Request) string {
	return core.SessionIDFromContext(r.Context())
}
