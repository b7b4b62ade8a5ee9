package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-monitor/models"
)

type MongoAlertStore struct {
	coll *mongo.Collection
}

func NewMongoAlertStore(coll *mongo.Collection) *MongoAlertStore {
	return &MongoAlertStore{coll: coll}
}

func (s *MongoAlertStore) Insert(ctx context.Context, a *models.Alert) error {
	if _, err := s.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (s *MongoAlertStore) ListByUser(ctx context.Context, userID string) ([]models.Alert, error) {
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	alerts := []models.Alert{}
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	return alerts, nil
}

func (s *MongoAlertStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.coll.DeleteOne(ctx, ownedFilter(userID, id))
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
