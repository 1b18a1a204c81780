package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey stores the authenticated caller identity (int64) in a
// request context. Set by the HTTP auth middleware.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity int64) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the caller identity and whether it was
// present with the right type.
func GetIdentityFromContext(ctx context.Context) (int64, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(int64)
	return identity, ok
}
