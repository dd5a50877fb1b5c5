package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// CompanyService defines use-case operations for companies. Every call
// receives the caller identity so tenant scoping is enforced before any
// mutation runs.
type CompanyService interface {
	Create(ctx context.Context, caller auth.Identity, company *domain.Company) (*domain.Company, error)
	Get(ctx context.Context, caller auth.Identity, id string) (*domain.Company, error)
	List(ctx context.Context, caller auth.Identity) ([]*domain.Company, error)
	Update(ctx context.Context, caller auth.Identity, company *domain.Company) error
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
}
