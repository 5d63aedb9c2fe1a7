package requestctx

import "context"

type contextKey string

// Key is the typed context key used for storing the request id.
var Key contextKey = "judgment-tools/request-id"

// WithRequestID embeds the request id into the parent context.
func WithRequestID(parent context.Context, id string) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithValue(parent, Key, id)
}

// RequestID retrieves the request id if present.
func RequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(Key).(string)
	return id, ok && id != ""
}
