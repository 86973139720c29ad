package middleware

import (
	"context"

	"practice-catalog/internal/model"
)

type ctxKey int

const userCtxKey ctxKey = iota

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(model.User)
	return user, ok
}

// ContextUserResolver resolves the current user from the request context.
type ContextUserResolver struct{}

func (ContextUserResolver) Current(ctx context.Context) (model.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return model.User{}, ErrNoUser
	}
	return user, nil
}
