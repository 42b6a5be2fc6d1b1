package server

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie names the cookie that carries the session key.
const SessionCookie = "charla_session"

// sessionKey returns the request's session key. A missing or malformed
// cookie gets a fresh key, and the cookie is set on h.
func sessionKey(h http.Header, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	key := uuid.NewString()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	h.Add("Set-Cookie", cookie.String())
	return key
}
