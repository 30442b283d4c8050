package ledger

import "context"

type freshReadKey struct{}

// WithFreshRead marks ctx so that caching sources go to their backend.
func WithFreshRead(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshReadKey{}, true)
}

func FreshRead(ctx context.Context) bool {
	fresh, _ := ctx.Value(freshReadKey{}).(bool)
	return fresh
}
