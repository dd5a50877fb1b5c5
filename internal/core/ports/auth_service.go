package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// LoginResult carries the authenticated account and its freshly issued token.
type LoginResult struct {
	Token  string
	Client *domain.Client
}

// AuthService authenticates credentials and issues tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// LoginThrottle bounds repeated failed logins per account before the
// expensive password derivation runs.
type LoginThrottle interface {
	// TooManyFailures reports whether the account has exhausted its
	// failed-attempt budget within the current window.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
