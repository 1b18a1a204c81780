package http

import (
	"errors"
	"net/http"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/service"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"
)

var errorStatusMap = map[error]int{
	utils.ErrEmptyBody:                  http.StatusBadRequest,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
}

// statusFromError maps known sentinels to a status code. Anything else that
// reaches the transport while decoding a request is the caller's fault.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}
