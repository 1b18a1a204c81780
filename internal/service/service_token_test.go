package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("sign-key", "defisensei", time.Hour)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.Identity)
}

func TestTokenService_CreateToken_InvalidParams(t *testing.T) {
	svc := NewTokenService("", "defisensei", time.Hour)

	_, err := svc.CreateToken(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestTokenService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	issuer := NewTokenService("sign-key", "defisensei", time.Hour)
	token, err := issuer.CreateToken(ctx, 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   TokenService
		token string
	}{
		{name: "garbage", svc: issuer, token: "not-a-jwt"},
		{name: "other key", svc: NewTokenService("other-key", "defisensei", time.Hour), token: token.SignedString},
		{name: "other issuer", svc: NewTokenService("sign-key", "someone-else", time.Hour), token: token.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestTokenService_ParseToken_Expired(t *testing.T) {
	svc := NewTokenService("sign-key", "defisensei", -time.Minute)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, 1)
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
