package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "user_session"
	cookieTTL  = 365 * 24 * time.Hour
)

// FromRequest - returns the session id of the request. When the request carries none a new id
// is generated and the cookie to set is returned along with it.
func FromRequest(req *http.Request) (string, *http.Cookie) {
	if cookie, err := req.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    uuid.NewString(),
		Expires:  time.Now().Add(cookieTTL),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return cookie.Value, cookie
}
