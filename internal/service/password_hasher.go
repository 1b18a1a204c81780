package service

import "github.com/NikunjSachdeva/DefiSensei-Bot/internal/utils"

// PasswordHasher turns a plain password into the digest stored for an
// account. Equal inputs give equal digests, so comparing digests is the
// credential check.
type PasswordHasher func(password string) string

// NewPasswordHasher returns a hex SHA-256 hasher, peppered with HMAC when key
// is non-empty.
func NewPasswordHasher(key string) PasswordHasher {
	return func(password string) string {
		return utils.HashString(password, key)
	}
}
