package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inovaindustria/industria-api/internal/core/domain"
)

const (
	collectionActivities    = "atividades"
	collectionSubActivities = "subatividades"
)

type ActivityRepository struct {
	activities *mongo.Collection
	subs       *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		activities: db.Collection(collectionActivities),
		subs:       db.Collection(collectionSubActivities),
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if activity.ID == "" {
		activity.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.activities.InsertOne(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var activity domain.Activity
	if err := r.activities.FindOne(ctx, bson.M{"_id": id}).Decode(&activity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.activities.Find(ctx, bson.M{"id_projeto": projectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []*domain.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.activities.ReplaceOne(ctx, bson.M{"_id": activity.ID}, activity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// Delete removes an activity and its sub-activities.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.activities.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}

	_, err = r.subs.DeleteMany(ctx, bson.M{"id_atividade": id})
	return err
}

func (r *ActivityRepository) CreateSub(ctx context.Context, sub *domain.SubActivity) (*domain.SubActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if sub.ID == "" {
		sub.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.subs.InsertOne(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *ActivityRepository) FindSubByID(ctx context.Context, id string) (*domain.SubActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var sub domain.SubActivity
	if err := r.subs.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubActivityNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *ActivityRepository) ListSubs(ctx context.Context, activityID string) ([]*domain.SubActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.subs.Find(ctx, bson.M{"id_atividade": activityID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*domain.SubActivity
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *ActivityRepository) UpdateSub(ctx context.Context, sub *domain.SubActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.subs.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSubActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) DeleteSub(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.subs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubActivityNotFound
	}
	return nil
}
