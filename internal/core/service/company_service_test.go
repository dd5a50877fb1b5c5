package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

type stubCompanyRepo struct {
	byID   map[string]*domain.Company
	byCNPJ map[string]*domain.Company
}

func (s *stubCompanyRepo) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	company.ID = "company_1"
	return company, nil
}

func (s *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (s *stubCompanyRepo) FindByCNPJ(_ context.Context, cnpj string) (*domain.Company, error) {
	if c, ok := s.byCNPJ[cnpj]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (s *stubCompanyRepo) List(_ context.Context) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range s.byID {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCompanyRepo) Update(_ context.Context, _ *domain.Company) error { return nil }
func (s *stubCompanyRepo) Delete(_ context.Context, _ string) error          { return nil }

func TestCompanyService_WritesSuperAdminOnly(t *testing.T) {
	svc := NewCompanyService(&stubCompanyRepo{}, zerolog.Nop())
	caller := adminCaller("company_1")

	if _, err := svc.Create(context.Background(), caller, &domain.Company{CNPJ: "11222333000181"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("create: expected ErrForbidden, got %v", err)
	}
	if err := svc.Update(context.Background(), caller, &domain.Company{ID: "company_1"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), caller, "company_1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}
}

func TestCompanyService_CreateDuplicateCNPJ(t *testing.T) {
	existing := &domain.Company{ID: "company_1", CNPJ: "11222333000181"}
	repo := &stubCompanyRepo{byCNPJ: map[string]*domain.Company{existing.CNPJ: existing}}
	svc := NewCompanyService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), superAdminCaller(), &domain.Company{CNPJ: "11222333000181"})
	if !errors.Is(err, domain.ErrCompanyExists) {
		t.Fatalf("expected ErrCompanyExists, got %v", err)
	}
}

func TestCompanyService_GetOwnCompanyOnly(t *testing.T) {
	repo := &stubCompanyRepo{byID: map[string]*domain.Company{
		"company_1": {ID: "company_1"},
		"company_2": {ID: "company_2"},
	}}
	svc := NewCompanyService(repo, zerolog.Nop())

	if _, err := svc.Get(context.Background(), adminCaller("company_1"), "company_2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign get: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(context.Background(), adminCaller("company_1"), "company_1"); err != nil {
		t.Fatalf("own get: %v", err)
	}
}

func TestCompanyService_ListScoped(t *testing.T) {
	repo := &stubCompanyRepo{byID: map[string]*domain.Company{
		"company_1": {ID: "company_1"},
		"company_2": {ID: "company_2"},
	}}
	svc := NewCompanyService(repo, zerolog.Nop())

	all, err := svc.List(context.Background(), superAdminCaller())
	if err != nil {
		t.Fatalf("super admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("super admin sees %d, want 2", len(all))
	}

	own, err := svc.List(context.Background(), adminCaller("company_1"))
	if err != nil {
		t.Fatalf("tenant list: %v", err)
	}
	if len(own) != 1 || own[0].ID != "company_1" {
		t.Fatalf("tenant list = %+v", own)
	}
}
