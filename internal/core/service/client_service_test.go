package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

func superAdminCaller() auth.Identity {
	return auth.Identity{AccountID: "root", Role: domain.RoleSuperAdmin}
}

func adminCaller(company string) auth.Identity {
	return auth.Identity{AccountID: "admin", Role: domain.RoleAdmin, TenantID: &company}
}

func TestClientService_Register(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())

	company := "company_1"
	created, err := svc.Register(context.Background(), superAdminCaller(), ports.RegisterClientInput{
		Client: domain.Client{
			Name:      "Bruno",
			Email:     "bruno@example.com",
			CPF:       "123.456.789-09",
			CompanyID: &company,
		},
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != domain.RoleRegular {
		t.Fatalf("role not defaulted, got %q", created.Role)
	}
	if created.CPF != "12345678909" {
		t.Fatalf("cpf not normalised: %q", created.CPF)
	}
	if !created.Active {
		t.Fatalf("account not active")
	}
	if created.PasswordHash == "" || created.PasswordHash == "s3cret-pass" {
		t.Fatalf("password not hashed: %q", created.PasswordHash)
	}
	if !strings.HasPrefix(created.PasswordHash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %q", created.PasswordHash)
	}
	if !auth.VerifyPassword(created.PasswordHash, []byte("s3cret-pass")) {
		t.Fatalf("stored hash does not verify")
	}
}

func TestClientService_RegisterDuplicate(t *testing.T) {
	company := "company_1"
	existing := &domain.Client{ID: "client_1", Email: "bruno@example.com", CPF: "12345678909", CompanyID: &company}
	repo := &stubClientRepo{
		byEmail: map[string]*domain.Client{existing.Email: existing},
		byCPF:   map[string]*domain.Client{existing.CPF: existing},
	}
	svc := NewClientService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), superAdminCaller(), ports.RegisterClientInput{
		Client:   domain.Client{Email: "other@example.com", CPF: "123.456.789-09", CompanyID: &company},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("duplicate cpf: expected ErrClientExists, got %v", err)
	}

	_, err = svc.Register(context.Background(), superAdminCaller(), ports.RegisterClientInput{
		Client:   domain.Client{Email: "bruno@example.com", CPF: "99988877766", CompanyID: &company},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("duplicate email: expected ErrClientExists, got %v", err)
	}
}

func TestClientService_RegisterScope(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	own := "company_1"
	other := "company_2"

	// Tenant admin creating outside its own company.
	_, err := svc.Register(context.Background(), adminCaller(own), ports.RegisterClientInput{
		Client:   domain.Client{Email: "x@example.com", CPF: "11122233344", CompanyID: &other},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross-tenant create: expected ErrForbidden, got %v", err)
	}

	// Tenant admin minting a SUPER_ADMIN.
	_, err = svc.Register(context.Background(), adminCaller(own), ports.RegisterClientInput{
		Client:   domain.Client{Email: "x@example.com", CPF: "11122233344", CompanyID: &own, Role: domain.RoleSuperAdmin},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("privilege escalation: expected ErrForbidden, got %v", err)
	}

	// Tenant-scoped account without a company.
	_, err = svc.Register(context.Background(), superAdminCaller(), ports.RegisterClientInput{
		Client:   domain.Client{Email: "x@example.com", CPF: "11122233344", Role: domain.RoleRegular},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrCompanyRequired) {
		t.Fatalf("missing company: expected ErrCompanyRequired, got %v", err)
	}
}

func TestClientService_RegisterInvalidRole(t *testing.T) {
	svc := NewClientService(&stubClientRepo{}, zerolog.Nop())
	company := "company_1"

	_, err := svc.Register(context.Background(), superAdminCaller(), ports.RegisterClientInput{
		Client:   domain.Client{Email: "x@example.com", CPF: "11122233344", CompanyID: &company, Role: "OWNER"},
		Password: "pass",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestClientService_GetScope(t *testing.T) {
	own := "company_1"
	other := "company_2"
	target := &domain.Client{ID: "client_2", CompanyID: &other}
	repo := &stubClientRepo{byID: map[string]*domain.Client{target.ID: target}}
	svc := NewClientService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), adminCaller(own), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross-tenant get: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), superAdminCaller(), target.ID); err != nil {
		t.Fatalf("super admin get: %v", err)
	}
}

func TestClientService_ListRequiresCompany(t *testing.T) {
	repo := &stubClientRepo{}
	svc := NewClientService(repo, zerolog.Nop())
	own := "company_1"
	other := "company_2"

	if _, err := svc.List(context.Background(), adminCaller(own), nil); !errors.Is(err, domain.ErrCompanyRequired) {
		t.Fatalf("expected ErrCompanyRequired, got %v", err)
	}
	if _, err := svc.List(context.Background(), adminCaller(own), &other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.List(context.Background(), adminCaller(own), &own); err != nil {
		t.Fatalf("own company list: %v", err)
	}
	if _, err := svc.List(context.Background(), superAdminCaller(), nil); err != nil {
		t.Fatalf("super admin unfiltered list: %v", err)
	}
}

func TestClientService_UpdatePreservesHash(t *testing.T) {
	company := "company_1"
	existing := &domain.Client{ID: "client_1", CompanyID: &company, PasswordHash: "$argon2id$stored"}
	repo := &stubClientRepo{byID: map[string]*domain.Client{existing.ID: existing}}
	svc := NewClientService(repo, zerolog.Nop())

	updated := &domain.Client{ID: "client_1", CompanyID: &company, Name: "New Name"}
	if err := svc.Update(context.Background(), superAdminCaller(), updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash != "$argon2id$stored" {
		t.Fatalf("stored hash was clobbered: %q", updated.PasswordHash)
	}
}

func TestClientService_UpdateKeepsCompany(t *testing.T) {
	own := "company_1"
	other := "company_2"
	existing := &domain.Client{ID: "client_1", CompanyID: &own, Role: domain.RoleRegular}
	repo := &stubClientRepo{byID: map[string]*domain.Client{existing.ID: existing}}
	svc := NewClientService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), adminCaller(own), &domain.Client{
		ID:        "client_1",
		CompanyID: &other,
		Name:      "Renamed",
		Role:      domain.RoleRegular,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("update never reached the repository")
	}
	if repo.updated.CompanyID == nil || *repo.updated.CompanyID != own {
		t.Fatalf("persisted company = %v, want %q", repo.updated.CompanyID, own)
	}
}

func TestClientService_UpdateRoleEscalation(t *testing.T) {
	own := "company_1"
	existing := &domain.Client{ID: "client_1", CompanyID: &own, Role: domain.RoleRegular}
	repo := &stubClientRepo{byID: map[string]*domain.Client{existing.ID: existing}}
	svc := NewClientService(repo, zerolog.Nop())

	err := svc.Update(context.Background(), adminCaller(own), &domain.Client{
		ID:        "client_1",
		CompanyID: &own,
		Role:      domain.RoleSuperAdmin,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("forbidden update reached the repository: %+v", repo.updated)
	}
}
