package session

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	tokenIssuer "github.com/VinBdev/Predict-Your-Sales/pkg/jwt"
)

const (
	sessionCookie = "pys_session"
	flashCookie   = "pys_flash"

	// sessions outlive a working day; there is no server-side expiry
	// beyond what the signed token carries
	sessionTTL = 24 * time.Hour
)

// Manager keeps the session state in a signed HttpOnly cookie holding a
// single claim, the authenticated username. Flash messages ride in a
// separate one-shot cookie cleared on read.
type Manager struct {
	issuer *tokenIssuer.JWTService
}

func NewManager(issuer *tokenIssuer.JWTService) *Manager {
	return &Manager{
		issuer: issuer,
	}
}

// Login signs a session token for username and sets the session cookie.
func (m *Manager) Login(w http.ResponseWriter, username string) error {
	token := m.issuer.Generate(tokenIssuer.TokenInfo{
		UserName:   username,
		Expiration: sessionTTL,
	})
	signed, err := m.issuer.Sign(token)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
	return nil
}

// Logout expires the session cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// CurrentUser returns the authenticated username carried by the request,
// or false when the session is absent, tampered with or expired.
func (m *Manager) CurrentUser(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}

	claims, err := m.issuer.Validate(cookie.Value)
	if err != nil {
		return "", false
	}

	username, ok := claims["user"].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// Flash attaches a one-shot notice to the next rendered response.
func (m *Manager) Flash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads the pending flash message and clears it.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil || message == "" {
		return "", false
	}
	return message, true
}
