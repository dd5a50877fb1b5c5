package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inovaindustria/industria-api/internal/core/ports"
)

const collectionAuthAudit = "auth_audit"

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{collection: db.Collection(collectionAuthAudit)}
}

type authEventDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	AccountID string    `bson:"id_cliente,omitempty"`
	Kind      string    `bson:"tipo"`
	Reason    string    `bson:"motivo,omitempty"`
	At        time.Time `bson:"data"`
}

func (r *AuditRepository) Insert(ctx context.Context, event ports.AuthEventInput) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := authEventDoc{
		ID:        primitive.NewObjectID().Hex(),
		Email:     event.Email,
		AccountID: event.AccountID,
		Kind:      event.Kind,
		Reason:    event.Reason,
		At:        event.At,
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}
