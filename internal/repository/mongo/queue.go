package mongo

import (
	"context"

	"tradebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QueueRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewQueueRepository(conn *mongo.Client, dbName string) *QueueRepository {
	collection := conn.Database(dbName).Collection("queue")

	return &QueueRepository{conn: conn, collection: collection}
}

func orderKey(trader, symbol, strategy, accountID string) bson.D {
	return bson.D{
		{Key: "trader", Value: trader},
		{Key: "symbol", Value: symbol},
		{Key: "strategy", Value: strategy},
		{Key: "account_id", Value: accountID},
	}
}

func (r *QueueRepository) Find(trader, accountID string) ([]models.QueuedOrder, error) {
	cur, err := r.collection.Find(context.TODO(), bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
	})
	if err != nil {
		return nil, err
	}

	var out []models.QueuedOrder

	if err := cur.All(context.TODO(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *QueueRepository) FindOne(trader, symbol, strategy, accountID string) (*models.QueuedOrder, error) {
	var result models.QueuedOrder

	err := r.collection.FindOne(context.TODO(), orderKey(trader, symbol, strategy, accountID)).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *QueueRepository) Upsert(order *models.QueuedOrder) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		orderKey(order.Trader, order.Symbol, order.Strategy, order.AccountID),
		bson.D{{Key: "$set", Value: order}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *QueueRepository) SetStatus(trader, symbol, strategy, accountID, status string) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		orderKey(trader, symbol, strategy, accountID),
		bson.D{{Key: "$set", Value: bson.D{{Key: "order_status", Value: status}}}},
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *QueueRepository) Delete(trader, symbol, strategy, accountID string) (int64, error) {
	res, err := r.collection.DeleteOne(context.TODO(), orderKey(trader, symbol, strategy, accountID))
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}
