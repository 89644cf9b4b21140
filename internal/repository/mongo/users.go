package mongo

import (
	"context"

	"tradebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewUsersRepository(conn *mongo.Client, dbName string) *UsersRepository {
	collection := conn.Database(dbName).Collection("users")

	return &UsersRepository{conn: conn, collection: collection}
}

func (r *UsersRepository) FindOne(trader, accountID string) (*models.Account, error) {
	var result models.Account

	err := r.collection.FindOne(context.TODO(), bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
	}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *UsersRepository) SetLiquidationValue(trader, accountID string, value float64) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{
			{Key: "trader", Value: trader},
			{Key: "account_id", Value: accountID},
		},
		bson.D{{Key: "$set", Value: bson.D{{Key: "liquidation_value", Value: value}}}},
	)
	if err != nil {
		return err
	}

	return nil
}
