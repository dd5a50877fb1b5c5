package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

// ActivityService implements activity and sub-activity CRUD. Tenant scope
// is resolved through the owning project's company.
type ActivityService struct {
	repo     ports.ActivityRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewActivityService(repo ports.ActivityRepository, projects ports.ProjectRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{repo: repo, projects: projects, logger: logger}
}

func (s *ActivityService) Create(ctx context.Context, caller auth.Identity, activity *domain.Activity) (*domain.Activity, error) {
	if err := s.checkProjectScope(ctx, caller, activity.ProjectID); err != nil {
		return nil, err
	}

	if activity.Status == "" {
		activity.Status = domain.ActivityPending
	}
	if activity.Priority == "" {
		activity.Priority = domain.PriorityMedium
	}
	activity.CreatedAt = time.Now().UTC()

	created, err := s.repo.Create(ctx, activity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create activity")
		return nil, err
	}

	return created, nil
}

// ListByProject returns the project's activities with their sub-activities
// attached, the shape the original endpoint exposes.
func (s *ActivityService) ListByProject(ctx context.Context, caller auth.Identity, projectID string) ([]*domain.Activity, error) {
	if err := s.checkProjectScope(ctx, caller, projectID); err != nil {
		return nil, err
	}

	activities, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for _, activity := range activities {
		subs, err := s.repo.ListSubs(ctx, activity.ID)
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			activity.SubActivities = append(activity.SubActivities, *sub)
		}
	}
	return activities, nil
}

func (s *ActivityService) Update(ctx context.Context, caller auth.Identity, activity *domain.Activity) error {
	existing, err := s.repo.FindByID(ctx, activity.ID)
	if err != nil {
		return err
	}
	if err := s.checkProjectScope(ctx, caller, existing.ProjectID); err != nil {
		return err
	}
	activity.ProjectID = existing.ProjectID
	return s.repo.Update(ctx, activity)
}

func (s *ActivityService) Delete(ctx context.Context, caller auth.Identity, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkProjectScope(ctx, caller, existing.ProjectID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *ActivityService) CreateSub(ctx context.Context, caller auth.Identity, sub *domain.SubActivity) (*domain.SubActivity, error) {
	parent, err := s.repo.FindByID(ctx, sub.ActivityID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProjectScope(ctx, caller, parent.ProjectID); err != nil {
		return nil, err
	}

	if sub.Status == "" {
		sub.Status = domain.ActivityPending
	}
	if sub.Priority == "" {
		sub.Priority = domain.PriorityMedium
	}
	sub.CreatedAt = time.Now().UTC()

	created, err := s.repo.CreateSub(ctx, sub)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create sub-activity")
		return nil, err
	}

	return created, nil
}

func (s *ActivityService) ListSubs(ctx context.Context, caller auth.Identity, activityID string) ([]*domain.SubActivity, error) {
	parent, err := s.repo.FindByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if err := s.checkProjectScope(ctx, caller, parent.ProjectID); err != nil {
		return nil, err
	}
	return s.repo.ListSubs(ctx, activityID)
}

func (s *ActivityService) UpdateSub(ctx context.Context, caller auth.Identity, sub *domain.SubActivity) error {
	existing, err := s.repo.FindSubByID(ctx, sub.ID)
	if err != nil {
		return err
	}
	parent, err := s.repo.FindByID(ctx, existing.ActivityID)
	if err != nil {
		return err
	}
	if err := s.checkProjectScope(ctx, caller, parent.ProjectID); err != nil {
		return err
	}
	sub.ActivityID = existing.ActivityID
	return s.repo.UpdateSub(ctx, sub)
}

func (s *ActivityService) DeleteSub(ctx context.Context, caller auth.Identity, id string) error {
	existing, err := s.repo.FindSubByID(ctx, id)
	if err != nil {
		return err
	}
	parent, err := s.repo.FindByID(ctx, existing.ActivityID)
	if err != nil {
		return err
	}
	if err := s.checkProjectScope(ctx, caller, parent.ProjectID); err != nil {
		return err
	}
	return s.repo.DeleteSub(ctx, id)
}

// checkProjectScope loads the owning project and verifies the caller's
// tenant matches its company. SUPER_ADMIN always passes.
func (s *ActivityService) checkProjectScope(ctx context.Context, caller auth.Identity, projectID string) error {
	if caller.SuperAdmin() {
		return nil
	}
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if caller.TenantID == nil || *caller.TenantID != project.CompanyID {
		return domain.ErrForbidden
	}
	return nil
}
