package service

import (
	"context"
	"fmt"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// tokenService signs and checks the HS256 tokens that carry the caller
// identity between the chat front end and the backend.
type tokenService struct {
	// signKey is the HMAC secret shared with the token issuer.
	signKey string

	// issuer is the expected "iss" claim. Tokens from another issuer are
	// rejected.
	issuer string

	// duration is the lifetime of tokens minted by CreateToken.
	duration time.Duration
}

func NewTokenService(signKey, issuer string, duration time.Duration) TokenService {
	return &tokenService{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
	}
}

// CreateToken issues a signed JWT whose subject is identity.
func (t *tokenService) CreateToken(ctx context.Context, identity int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.issuer, identity, t.duration, t.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer and expiry of tokenString. Any
// failure is normalised to ErrTokenIsExpiredOrInvalid.
func (t *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
