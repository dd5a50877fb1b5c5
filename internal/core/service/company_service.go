package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

// CompanyService implements company CRUD. Companies are the tenants
// themselves, so writes are reserved to SUPER_ADMIN; tenant-scoped callers
// may only read their own company.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, caller auth.Identity, company *domain.Company) (*domain.Company, error) {
	if !caller.SuperAdmin() {
		return nil, domain.ErrForbidden
	}

	if existing, err := s.repo.FindByCNPJ(ctx, company.CNPJ); err == nil && existing != nil {
		return nil, domain.ErrCompanyExists
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create company")
		return nil, err
	}

	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, caller auth.Identity, id string) (*domain.Company, error) {
	if !caller.SuperAdmin() {
		if caller.TenantID == nil || *caller.TenantID != id {
			return nil, domain.ErrForbidden
		}
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, caller auth.Identity) ([]*domain.Company, error) {
	if caller.SuperAdmin() {
		return s.repo.List(ctx)
	}

	// Tenant-scoped callers see a single-element list with their own company.
	if caller.TenantID == nil {
		return nil, domain.ErrCompanyRequired
	}
	own, err := s.repo.FindByID(ctx, *caller.TenantID)
	if err != nil {
		return nil, err
	}
	return []*domain.Company{own}, nil
}

func (s *CompanyService) Update(ctx context.Context, caller auth.Identity, company *domain.Company) error {
	if !caller.SuperAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Update(ctx, company)
}

func (s *CompanyService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	if !caller.SuperAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
