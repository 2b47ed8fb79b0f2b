package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClaims(exp time.Time) Claims {
	return Claims{
		Subject:  "6c7a2f8e-0c1b-4a1e-9d4c-3f1f0b6b7a11",
		Username: "bob",
		RoleName: "instructor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("shh")
	in := sampleClaims(time.Now().Add(time.Hour))

	token, err := codec.Encode(in)
	require.NoError(t, err)

	out, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in.Subject, out.Subject)
	assert.Equal(t, in.Username, out.Username)
	assert.Equal(t, in.RoleName, out.RoleName)
	assert.True(t, in.ExpiresAt.Time.Equal(out.ExpiresAt.Time))
	assert.True(t, in.IssuedAt.Time.Equal(out.IssuedAt.Time))
}

func TestTokenCodec_WithoutExpiry(t *testing.T) {
	codec := NewTokenCodec("shh")

	token, err := codec.Encode(Claims{RoleName: "student"})
	require.NoError(t, err)

	out, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "student", out.RoleName)
}

func TestTokenCodec_Rejects(t *testing.T) {
	codec := NewTokenCodec("shh")

	valid, err := codec.Encode(sampleClaims(time.Now().Add(time.Hour)))
	require.NoError(t, err)

	wrongSecret, err := NewTokenCodec("not-the-secret").Encode(sampleClaims(time.Now().Add(time.Hour)))
	require.NoError(t, err)

	expired, err := codec.Encode(sampleClaims(time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, sampleClaims(time.Now().Add(time.Hour))).SignedString([]byte("shh"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sampleClaims(time.Now().Add(time.Hour))).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	forged, err := codec.Encode(Claims{RoleName: "admin"})
	require.NoError(t, err)
	tampered := parts[0] + "." + strings.Split(forged, ".")[1] + "." + parts[2]

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"malformed":    "a.b.c",
		"wrong secret": wrongSecret,
		"expired":      expired,
		"hs512":        hs512,
		"alg none":     unsigned,
		"tampered":     tampered,
		"bearer":       "Bearer " + valid,
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := codec.Decode(token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
			assert.Nil(t, claims)
		})
	}
}
