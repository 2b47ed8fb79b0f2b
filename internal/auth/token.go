package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is returned for any token that fails verification.
var ErrTokenInvalid = errors.New("token invalid")

// Claims describes the JWT payload carried by API callers.
type Claims struct {
	Subject  string `json:"subject,omitempty"`
	Username string `json:"username,omitempty"`
	RoleName string `json:"role_name"`
	jwt.RegisteredClaims
}

// TokenCodec verifies and decodes HS256 tokens signed with a single trusted secret.
type TokenCodec struct {
	secret []byte
	parser *jwt.Parser
}

// NewTokenCodec builds a codec bound to secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Encode signs claims. Used by trusted tooling and tests; the API never issues tokens.
func (tc *TokenCodec) Encode(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(tc.secret)
}

// Decode validates signature, algorithm and expiry and returns the claims.
// Every failure is reported as ErrTokenInvalid.
func (tc *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	parsed, err := tc.parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tc.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
