package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jdelarosa/finanzas-api/internal"
)

// User is the session identity injected into request contexts. It mirrors
// the opaque record the identity provider exposes: a stable uid plus
// optional profile fields.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Claims are the ID-token claims this backend reads. The provider mints the
// token; subject carries the uid.
type Claims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier checks an identity-provider ID token and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// ServiceAPI resolves a presented token into a session user.
type ServiceAPI interface {
	ResolveUser(tokenString string) (*User, error)
}

var (
	ErrInvalidToken = internal.ErrInvalidToken
	ErrTokenExpired = internal.ErrTokenExpired
)

// HMACVerifier verifies HS256-signed ID tokens against a shared secret,
// issuer and optional audience.
type HMACVerifier struct {
	Secret   []byte
	Issuer   string
	Audience string
}

func NewHMACVerifier(secret, issuer, audience string) *HMACVerifier {
	return &HMACVerifier{
		Secret:   []byte(secret),
		Issuer:   issuer,
		Audience: audience,
	}
}

func (v *HMACVerifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithExpirationRequired(),
	}
	if v.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.Audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
