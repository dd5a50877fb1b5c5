package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

type stubActivityRepo struct {
	byID    map[string]*domain.Activity
	subByID map[string]*domain.SubActivity
	subsFor map[string][]*domain.SubActivity
}

func (s *stubActivityRepo) Create(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	activity.ID = "activity_1"
	return activity, nil
}

func (s *stubActivityRepo) FindByID(_ context.Context, id string) (*domain.Activity, error) {
	if a, ok := s.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrActivityNotFound
}

func (s *stubActivityRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, a := range s.byID {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubActivityRepo) Update(_ context.Context, _ *domain.Activity) error { return nil }
func (s *stubActivityRepo) Delete(_ context.Context, _ string) error           { return nil }

func (s *stubActivityRepo) CreateSub(_ context.Context, sub *domain.SubActivity) (*domain.SubActivity, error) {
	sub.ID = "sub_1"
	return sub, nil
}

func (s *stubActivityRepo) FindSubByID(_ context.Context, id string) (*domain.SubActivity, error) {
	if sub, ok := s.subByID[id]; ok {
		return sub, nil
	}
	return nil, domain.ErrSubActivityNotFound
}

func (s *stubActivityRepo) ListSubs(_ context.Context, activityID string) ([]*domain.SubActivity, error) {
	return s.subsFor[activityID], nil
}

func (s *stubActivityRepo) UpdateSub(_ context.Context, _ *domain.SubActivity) error { return nil }
func (s *stubActivityRepo) DeleteSub(_ context.Context, _ string) error              { return nil }

func activityFixtures() (*stubActivityRepo, *stubProjectRepo) {
	projects := &stubProjectRepo{byID: map[string]*domain.Project{
		"p1": {ID: "p1", CompanyID: "company_1"},
		"p2": {ID: "p2", CompanyID: "company_2"},
	}}
	activities := &stubActivityRepo{
		byID: map[string]*domain.Activity{
			"a1": {ID: "a1", ProjectID: "p1", Title: "Survey"},
		},
		subByID: map[string]*domain.SubActivity{
			"s1": {ID: "s1", ActivityID: "a1", Title: "Interviews"},
		},
		subsFor: map[string][]*domain.SubActivity{
			"a1": {{ID: "s1", ActivityID: "a1", Title: "Interviews"}},
		},
	}
	return activities, projects
}

func TestActivityService_CreateDefaults(t *testing.T) {
	activities, projects := activityFixtures()
	svc := NewActivityService(activities, projects, zerolog.Nop())

	created, err := svc.Create(context.Background(), adminCaller("company_1"), &domain.Activity{ProjectID: "p1", Title: "Audit"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != domain.ActivityPending {
		t.Fatalf("status not defaulted: %q", created.Status)
	}
	if created.Priority != domain.PriorityMedium {
		t.Fatalf("priority not defaulted: %q", created.Priority)
	}
}

func TestActivityService_ScopeThroughProject(t *testing.T) {
	activities, projects := activityFixtures()
	svc := NewActivityService(activities, projects, zerolog.Nop())

	// company_2 admin cannot touch a company_1 project's activities.
	_, err := svc.Create(context.Background(), adminCaller("company_2"), &domain.Activity{ProjectID: "p1"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	_, err = svc.ListByProject(context.Background(), adminCaller("company_2"), "p1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("list: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminCaller("company_2"), "a1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteSub(context.Background(), adminCaller("company_2"), "s1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("delete sub: expected ErrForbidden, got %v", err)
	}

	// Unknown project surfaces as not found, not forbidden.
	_, err = svc.Create(context.Background(), adminCaller("company_1"), &domain.Activity{ProjectID: "missing"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestActivityService_ListAttachesSubs(t *testing.T) {
	activities, projects := activityFixtures()
	svc := NewActivityService(activities, projects, zerolog.Nop())

	list, err := svc.ListByProject(context.Background(), adminCaller("company_1"), "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d activities, want 1", len(list))
	}
	if len(list[0].SubActivities) != 1 || list[0].SubActivities[0].ID != "s1" {
		t.Fatalf("sub-activities not attached: %+v", list[0].SubActivities)
	}
}

func TestActivityService_SubCreateDefaults(t *testing.T) {
	activities, projects := activityFixtures()
	svc := NewActivityService(activities, projects, zerolog.Nop())

	created, err := svc.CreateSub(context.Background(), adminCaller("company_1"), &domain.SubActivity{ActivityID: "a1", Title: "Draft"})
	if err != nil {
		t.Fatalf("create sub: %v", err)
	}
	if created.Status != domain.ActivityPending || created.Priority != domain.PriorityMedium {
		t.Fatalf("defaults not applied: %+v", created)
	}

	_, err = svc.CreateSub(context.Background(), adminCaller("company_1"), &domain.SubActivity{ActivityID: "missing"})
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
