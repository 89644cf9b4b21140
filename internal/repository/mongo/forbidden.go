package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ForbiddenRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewForbiddenRepository(conn *mongo.Client, dbName string) *ForbiddenRepository {
	collection := conn.Database(dbName).Collection("forbidden")

	return &ForbiddenRepository{conn: conn, collection: collection}
}

func (r *ForbiddenRepository) Exists(symbol, accountID string) (bool, error) {
	count, err := r.collection.CountDocuments(context.TODO(), bson.D{
		{Key: "symbol", Value: symbol},
		{Key: "account_id", Value: accountID},
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
