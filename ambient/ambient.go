// Package ambient carries request-scoped values, most importantly the
// transaction id, on a context.Context so loggers can pick them up without
// every call site passing them explicitly.
package ambient

import (
	"context"

	"github.com/google/uuid"
)

// TxIDKey is the ambient key loggers read the transaction id from.
const TxIDKey = "txid"

type ctxKey struct{ name string }

// With returns a copy of ctx in which key is bound to value.
func With(ctx context.Context, key string, value any) context.Context {
	return context.WithValue(ctx, ctxKey{name: key}, value)
}

// Get returns the value bound to key, if any.
func Get(ctx context.Context, key string) (any, bool) {
	if ctx == nil {
		return nil, false
	}
	v := ctx.Value(ctxKey{name: key})
	return v, v != nil
}

// WithTxID binds id as the transaction id.
func WithTxID(ctx context.Context, id string) context.Context {
	return With(ctx, TxIDKey, id)
}

// TxID returns the bound transaction id, or "" when there is none.
func TxID(ctx context.Context) string {
	v, ok := Get(ctx, TxIDKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// NewTxID returns a fresh random transaction id.
func NewTxID() string {
	return uuid.NewString()
}
