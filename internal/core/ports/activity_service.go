package ports

import (
	"context"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
)

// ActivityService defines use-case operations for activities and their
// sub-activities. Tenant scope is resolved through the owning project.
type ActivityService interface {
	Create(ctx context.Context, caller auth.Identity, activity *domain.Activity) (*domain.Activity, error)
	ListByProject(ctx context.Context, caller auth.Identity, projectID string) ([]*domain.Activity, error)
	Update(ctx context.Context, caller auth.Identity, activity *domain.Activity) error
	Delete(ctx context.Context, caller auth.Identity, id string) error

	CreateSub(ctx context.Context, caller auth.Identity, sub *domain.SubActivity) (*domain.SubActivity, error)
	ListSubs(ctx context.Context, caller auth.Identity, activityID string) ([]*domain.SubActivity, error)
	UpdateSub(ctx context.Context, caller auth.Identity, sub *domain.SubActivity) error
	DeleteSub(ctx context.Context, caller auth.Identity, id string) error
}

// ActivityRepository defines persistence operations for activities and
// sub-activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	FindByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id string) error

	CreateSub(ctx context.Context, sub *domain.SubActivity) (*domain.SubActivity, error)
	FindSubByID(ctx context.Context, id string) (*domain.SubActivity, error)
	ListSubs(ctx context.Context, activityID string) ([]*domain.SubActivity, error)
	UpdateSub(ctx context.Context, sub *domain.SubActivity) error
	DeleteSub(ctx context.Context, id string) error
}
