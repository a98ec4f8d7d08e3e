package ports

import (
	"context"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
)

// SessionStore holds at most one session per storage instance. Get returns
// domain.ErrNoSession when nothing is stored; Clear is idempotent.
type SessionStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

// Token reads the stored access token, mapping an absent session to the
// empty string so callers attaching headers need no error branch.
func Token(ctx context.Context, store SessionStore) string {
	session, err := store.Get(ctx)
	if err != nil {
		return ""
	}
	return session.AccessToken
}
