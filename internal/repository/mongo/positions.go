package mongo

import (
	"context"
	"fmt"

	"tradebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OpenPositionsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewOpenPositionsRepository(conn *mongo.Client, dbName string) *OpenPositionsRepository {
	collection := conn.Database(dbName).Collection("open_positions")

	return &OpenPositionsRepository{conn: conn, collection: collection}
}

func (r *OpenPositionsRepository) Find(trader, accountID string) ([]models.OpenPosition, error) {
	return r.find(bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
	})
}

func (r *OpenPositionsRepository) FindByOrderType(trader, accountID, orderType string) ([]models.OpenPosition, error) {
	return r.find(bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
		{Key: "order_type", Value: orderType},
	})
}

func (r *OpenPositionsRepository) FindByAssetType(trader, accountID, assetType string) ([]models.OpenPosition, error) {
	return r.find(bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
		{Key: "asset_type", Value: assetType},
	})
}

func (r *OpenPositionsRepository) find(filter bson.D) ([]models.OpenPosition, error) {
	cur, err := r.collection.Find(context.TODO(), filter)
	if err != nil {
		return nil, err
	}

	var out []models.OpenPosition

	if err := cur.All(context.TODO(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *OpenPositionsRepository) FindOne(trader, symbol, strategy, accountID string) (*models.OpenPosition, error) {
	var result models.OpenPosition

	err := r.collection.FindOne(context.TODO(), orderKey(trader, symbol, strategy, accountID)).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *OpenPositionsRepository) Insert(position *models.OpenPosition) error {
	_, err := r.collection.InsertOne(context.TODO(), position)
	if err != nil {
		return err
	}

	return nil
}

func (r *OpenPositionsRepository) SetChildStatus(trader, symbol, strategy, accountID, childID, status string) error {
	field := fmt.Sprintf("child_orders.%s.order_status", childID)

	_, err := r.collection.UpdateOne(
		context.TODO(),
		orderKey(trader, symbol, strategy, accountID),
		bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: status}}}},
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *OpenPositionsRepository) Delete(trader, symbol, strategy, accountID string) (int64, error) {
	res, err := r.collection.DeleteOne(context.TODO(), orderKey(trader, symbol, strategy, accountID))
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

type ClosedPositionsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewClosedPositionsRepository(conn *mongo.Client, dbName string) *ClosedPositionsRepository {
	collection := conn.Database(dbName).Collection("closed_positions")

	return &ClosedPositionsRepository{conn: conn, collection: collection}
}

func (r *ClosedPositionsRepository) Find(trader, accountID string) ([]models.ClosedPosition, error) {
	cur, err := r.collection.Find(context.TODO(), bson.D{
		{Key: "trader", Value: trader},
		{Key: "account_id", Value: accountID},
	})
	if err != nil {
		return nil, err
	}

	var out []models.ClosedPosition

	if err := cur.All(context.TODO(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ClosedPositionsRepository) Insert(position *models.ClosedPosition) error {
	_, err := r.collection.InsertOne(context.TODO(), position)
	if err != nil {
		return err
	}

	return nil
}
