package reqctx

import (
	"context"

	"jurisight/internal/workflow"
)

type key int

const (
	keyRequestID key = iota
	keyUserID
	keyRole
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

func GetUserID(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(keyUserID).(int64)
	return v, ok
}

func WithRole(ctx context.Context, role workflow.Role) context.Context {
	return context.WithValue(ctx, keyRole, role)
}

func GetRole(ctx context.Context) (workflow.Role, bool) {
	v, ok := ctx.Value(keyRole).(workflow.Role)
	return v, ok
}
