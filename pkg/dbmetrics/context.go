package dbmetrics

import "context"

type executorKey struct{}

// WithExecutor returns a context carrying the given executor. Transaction
// managers use this to make an open transaction visible to repositories.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, exec)
}

// GetExecutor returns the executor stored in the context, or fallback when the
// context carries none. Repositories call this on every query so the same code
// path works inside and outside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction reports whether the context carries a transaction executor.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(DBExecutor)
	return ok
}
