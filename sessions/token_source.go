package sessions

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rayaboutique242-create/raya-console/internal/errors"
	"golang.org/x/oauth2"
)

var _ oauth2.TokenSource = (*Manager)(nil)

// Token exposes the held access token to code built on golang.org/x/oauth2.
// It never refreshes; an expired token is returned as-is and renewed by the client on 401.
func (m *Manager) Token() (*oauth2.Token, error) {
	s := m.Session()
	if !s.Authenticated() {
		return nil, errors.ErrNoAccessToken
	}
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: s.RefreshToken,
		Expiry:       TokenExpiry(s.AccessToken),
	}, nil
}

// TokenExpiry reads the exp claim of a JWT access token without verifying it.
// Opaque tokens, and JWTs without exp, report the zero time.
func TokenExpiry(rawToken string) time.Time {
	claims := jwtlib.MapClaims{}
	if _, _, err := jwtlib.NewParser().ParseUnverified(rawToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
