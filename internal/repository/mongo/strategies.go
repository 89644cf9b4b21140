package mongo

import (
	"context"

	"tradebot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StrategiesRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewStrategiesRepository(conn *mongo.Client, dbName string) *StrategiesRepository {
	collection := conn.Database(dbName).Collection("strategies")

	return &StrategiesRepository{conn: conn, collection: collection}
}

func (r *StrategiesRepository) FindOne(strategy, accountID string) (*models.StrategyConfig, error) {
	var result models.StrategyConfig

	err := r.collection.FindOne(context.TODO(), bson.D{
		{Key: "strategy", Value: strategy},
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

// InsertIfAbsent creates the config only when the (strategy, account_id) key
// does not exist yet. An existing config is never touched.
func (r *StrategiesRepository) InsertIfAbsent(cfg *models.StrategyConfig) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{
			{Key: "strategy", Value: cfg.Strategy},
			{Key: "account_id", Value: cfg.AccountID},
		},
		bson.D{{Key: "$setOnInsert", Value: cfg}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *StrategiesRepository) UpdatePositionSizeAll(accountID string, size float64) (int64, error) {
	res, err := r.collection.UpdateMany(
		context.TODO(),
		bson.D{{Key: "account_id", Value: accountID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "position_size", Value: size}}}},
	)
	if err != nil {
		return 0, err
	}

	return res.ModifiedCount, nil
}
