package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

// ClientService implements account CRUD. Registration hashes the password
// before anything touches the store; the plaintext is wiped by the hasher.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) Register(ctx context.Context, caller auth.Identity, input ports.RegisterClientInput) (*domain.Client, error) {
	client := input.Client

	client.CPF = stripCPF(client.CPF)

	if client.Role == "" {
		client.Role = domain.RoleRegular
	}
	if !client.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	// Only SUPER_ADMIN creates accounts outside its own company or other
	// SUPER_ADMIN accounts.
	if !caller.SuperAdmin() {
		if client.Role == domain.RoleSuperAdmin {
			return nil, domain.ErrForbidden
		}
		if client.CompanyID == nil || caller.TenantID == nil || *client.CompanyID != *caller.TenantID {
			return nil, domain.ErrForbidden
		}
	}
	if client.TenantScoped() && client.CompanyID == nil {
		return nil, domain.ErrCompanyRequired
	}

	if existing, err := s.repo.FindByCPF(ctx, client.CPF); err == nil && existing != nil {
		return nil, domain.ErrClientExists
	}
	if existing, err := s.repo.FindByEmail(ctx, client.Email); err == nil && existing != nil {
		return nil, domain.ErrClientExists
	}

	if input.Password != "" {
		hash, err := auth.HashPassword([]byte(input.Password))
		if err != nil {
			s.logger.Error().Err(err).Msg("password hashing failed")
			return nil, err
		}
		client.PasswordHash = hash
	}

	client.CreatedAt = time.Now().UTC()
	client.Active = true

	created, err := s.repo.Create(ctx, &client)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	return created, nil
}

func (s *ClientService) Get(ctx context.Context, caller auth.Identity, id string) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(caller, client.CompanyID); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, caller auth.Identity, companyID *string) ([]*domain.Client, error) {
	if caller.SuperAdmin() {
		return s.repo.List(ctx, companyID)
	}

	if companyID == nil {
		return nil, domain.ErrCompanyRequired
	}
	if caller.TenantID == nil || *caller.TenantID != *companyID {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, companyID)
}

func (s *ClientService) Update(ctx context.Context, caller auth.Identity, client *domain.Client) error {
	existing, err := s.repo.FindByID(ctx, client.ID)
	if err != nil {
		return err
	}
	if err := s.checkScope(caller, existing.CompanyID); err != nil {
		return err
	}
	if !caller.SuperAdmin() && client.Role == domain.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	// Credential changes go through registration-style hashing elsewhere;
	// the stored hash is replaced wholesale, never mutated here. The same
	// holds for company membership.
	client.PasswordHash = existing.PasswordHash
	client.CompanyID = existing.CompanyID
	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkScope(caller, existing.CompanyID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ClientService) checkScope(caller auth.Identity, companyID *string) error {
	if caller.SuperAdmin() {
		return nil
	}
	if companyID == nil || caller.TenantID == nil || *caller.TenantID != *companyID {
		return domain.ErrForbidden
	}
	return nil
}

// stripCPF removes formatting characters from a CPF, keeping digits only.
func stripCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
