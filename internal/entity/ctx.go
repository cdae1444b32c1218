package entity

import (
	"context"
	"fmt"
)

type (
	CtxKeyIP   struct{}
	CtxKeyUser struct{}
)

// UserFromContext returns the signed-in user placed by the auth middleware.
func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, fmt.Errorf("%w: no user in context", ErrUnauthorized)
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, CtxKeyIP{}, ip)
}

func IPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(CtxKeyIP{}).(string)
	return ip
}
