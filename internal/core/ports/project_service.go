package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// ListProjectsInput carries the list parameters. CompanyID comes from the
// `empresa` query parameter; nil means "no filter", which only a
// SUPER_ADMIN caller may use.
type ListProjectsInput struct {
	CompanyID *string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, caller auth.Identity, project *domain.Project) (*domain.Project, error)
	Get(ctx context.Context, caller auth.Identity, id string) (*domain.Project, error)
	List(ctx context.Context, caller auth.Identity, input ListProjectsInput) ([]*domain.Project, error)
	Update(ctx context.Context, caller auth.Identity, project *domain.Project) error
	Delete(ctx context.Context, caller auth.Identity, id string) error
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects, optionally filtered to one company.
	List(ctx context.Context, companyID *string) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}
