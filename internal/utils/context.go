// Package utils holds helpers shared by the go-panel packages: the
// authenticated user carried in request contexts, JSON response writing,
// the egg document fetcher, JWT signing and UUID generation.
package utils

import (
	"context"
)

type userKey struct{}

// panelUser is the authenticated panel user of a request.
type panelUser struct {
	id        int64
	rootAdmin bool
}

// WithUser returns a copy of ctx authenticated as userID. rootAdmin marks
// the user as a panel root administrator, which lifts the user-viewable and
// user-editable restrictions on egg variables.
func WithUser(ctx context.Context, userID int64, rootAdmin bool) context.Context {
	return context.WithValue(ctx, userKey{}, panelUser{id: userID, rootAdmin: rootAdmin})
}

// UserID returns the authenticated user's id. ok is false for an
// unauthenticated context.
func UserID(ctx context.Context) (id int64, ok bool) {
	user, ok := ctx.Value(userKey{}).(panelUser)
	return user.id, ok
}

// IsRootAdmin reports whether ctx is authenticated as a root administrator.
// Unauthenticated contexts are regular users.
func IsRootAdmin(ctx context.Context) bool {
	user, _ := ctx.Value(userKey{}).(panelUser)
	return user.rootAdmin
}
