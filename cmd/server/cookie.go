package main

import (
	"net/http"
	"time"

	"github.com/Simplici0/kurocal/internal/session"
)

const sessionCookieName = "kurocal_session"

// sessionID returns the wizard session id carried by the request, minting a
// new one (and setting the cookie) when it is missing or malformed.
func sessionID(w http.ResponseWriter, r *http.Request, ttl time.Duration) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && session.ValidID(cookie.Value) {
		return cookie.Value
	}

	id := session.NewID()
	setSessionCookie(w, id, ttl)
	return id
}

func setSessionCookie(w http.ResponseWriter, id string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
