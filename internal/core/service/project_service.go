package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

// ProjectService implements project CRUD with tenant scoping: a
// tenant-scoped caller only ever touches projects of its own company, while
// SUPER_ADMIN bypasses the filter entirely.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

// Create requires SUPER_ADMIN; regular accounts cannot open projects.
func (s *ProjectService) Create(ctx context.Context, caller auth.Identity, project *domain.Project) (*domain.Project, error) {
	if !caller.SuperAdmin() {
		return nil, domain.ErrForbidden
	}

	if project.Status == "" {
		project.Status = domain.ProjectPlanning
	}
	if project.Priority == "" {
		project.Priority = domain.PriorityMedium
	}
	project.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, caller auth.Identity, id string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(caller, project.CompanyID); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns all projects for SUPER_ADMIN, or the caller's own company's
// projects otherwise. The `empresa` filter is mandatory for tenant-scoped
// callers and must match their tenant.
func (s *ProjectService) List(ctx context.Context, caller auth.Identity, input ports.ListProjectsInput) ([]*domain.Project, error) {
	if caller.SuperAdmin() {
		return s.repo.List(ctx, input.CompanyID)
	}

	if input.CompanyID == nil {
		return nil, domain.ErrCompanyRequired
	}
	if err := s.checkScope(caller, *input.CompanyID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, input.CompanyID)
}

func (s *ProjectService) Update(ctx context.Context, caller auth.Identity, project *domain.Project) error {
	existing, err := s.repo.FindByID(ctx, project.ID)
	if err != nil {
		return err
	}
	if err := s.checkScope(caller, existing.CompanyID); err != nil {
		return err
	}
	// Ownership is fixed at creation; a write must not move the project
	// into another company.
	project.CompanyID = existing.CompanyID
	return s.repo.Update(ctx, project)
}

func (s *ProjectService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkScope(caller, existing.CompanyID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) checkScope(caller auth.Identity, companyID string) error {
	if caller.SuperAdmin() {
		return nil
	}
	if caller.TenantID == nil || *caller.TenantID != companyID {
		return domain.ErrForbidden
	}
	return nil
}
