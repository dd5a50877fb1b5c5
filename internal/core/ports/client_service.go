package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// RegisterClientInput carries the data needed to create an account. The
// plaintext password is hashed by the service and never stored or logged.
type RegisterClientInput struct {
	Client   domain.Client
	Password string
}

// ClientService defines use-case operations for client accounts.
type ClientService interface {
	Register(ctx context.Context, caller auth.Identity, input RegisterClientInput) (*domain.Client, error)
	Get(ctx context.Context, caller auth.Identity, id string) (*domain.Client, error)
	List(ctx context.Context, caller auth.Identity, companyID *string) ([]*domain.Client, error)
	Update(ctx context.Context, caller auth.Identity, client *domain.Client) error
	Delete(ctx context.Context, caller auth.Identity, id string) error
}
