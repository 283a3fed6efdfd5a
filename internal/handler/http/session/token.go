// Package session implements cookie-based sessions backed by signed
// tokens. It provides the token manager, the middleware that resolves
// the acting user, and the login/signup/logout handlers.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie.
const CookieName = "session"

// Identity is the signed-in user attached to a request.
type Identity struct {
	UserID   int64
	Username string
}

// Manager issues and verifies session tokens.
type Manager struct {
	Secret []byte
	TTL    time.Duration
}

// Issue creates a signed session token for the given identity.
func (m *Manager) Issue(id Identity) (string, error) {
	if id.UserID <= 0 {
		return "", fmt.Errorf("issue token: user ID must be positive, got %d", id.UserID)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatInt(id.UserID, 10),
		"name": id.Username,
		"iat":  now.Unix(),
		"exp":  now.Add(m.TTL).Unix(),
	})

	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns the identity it carries.
func (m *Manager) Parse(tokenString string) (*Identity, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid sub claim")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.New("invalid sub claim")
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil, errors.New("invalid name claim")
	}

	return &Identity{UserID: userID, Username: name}, nil
}

// SetCookie attaches the session token to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
