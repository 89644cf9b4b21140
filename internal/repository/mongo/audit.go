package mongo

import (
	"context"

	"tradebot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollectionRejected = "rejected"
	CollectionCanceled = "canceled"
)

// AuditRepository is an append-only log. One instance per collection
// (rejected, canceled); duplicates are tolerated.
type AuditRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewAuditRepository(conn *mongo.Client, dbName, collection string) *AuditRepository {
	return &AuditRepository{
		conn:       conn,
		collection: conn.Database(dbName).Collection(collection),
	}
}

func (r *AuditRepository) Insert(record *models.AuditRecord) error {
	_, err := r.collection.InsertOne(context.TODO(), record)
	if err != nil {
		return err
	}

	return nil
}
