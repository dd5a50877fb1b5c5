package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client accounts.
// The auth core only needs FindByEmail; the rest serves the CRUD surface.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Client, error)
	// List returns accounts, optionally filtered to one company.
	// A nil companyID means no tenant filter (SUPER_ADMIN listing).
	List(ctx context.Context, companyID *string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
}
