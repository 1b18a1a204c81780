package http

import (
	"errors"
	"net/http"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
)

// auth resolves the caller identity from the bearer token and stores it in
// the request context under [utils.IdentityCtxKey]. Requests without a valid
// token are rejected with 401 before reaching the dispatcher.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Err(err).Msg("token expired or invalid")
			} else {
				log.Err(err).Msg("error occurred during parsing token")
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		reportIdentity(ctx, token.Identity)
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, token.Identity)))
	})
}
