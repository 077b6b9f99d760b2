package auth

import "context"

type adminIDKey struct{}

// WithAdminID returns a context carrying the acting operator's id.
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey{}, adminID)
}

// AdminIDFromContext returns the acting operator's id, or "" when the
// request is anonymous.
func AdminIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(adminIDKey{}).(string)
	return id
}
