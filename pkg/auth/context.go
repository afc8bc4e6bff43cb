package auth

import (
	"context"

	"github.com/Sagar00752/hrms/pkg/jwt"
)

// WithPrincipal stores the authenticated caller and its raw token in ctx.
func WithPrincipal(ctx context.Context, p Principal, token string) context.Context {
	return jwt.SetClaims(jwt.SetToken(ctx, token), p)
}

// PrincipalFromContext returns the caller stored by the middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	return jwt.GetClaims[Principal](ctx)
}
