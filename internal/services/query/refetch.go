package query

import "context"

type refetchKey struct{}

// Refetch marks ctx so reads made with it skip the memoized value and go to
// the platform. The fresh result still replaces the cached one.
func Refetch(ctx context.Context) context.Context {
	return context.WithValue(ctx, refetchKey{}, true)
}

func isRefetch(ctx context.Context) bool {
	v, _ := ctx.Value(refetchKey{}).(bool)
	return v
}
