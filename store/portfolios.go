package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-monitor/models"
)

type MongoPortfolioStore struct {
	coll *mongo.Collection
}

func NewMongoPortfolioStore(coll *mongo.Collection) *MongoPortfolioStore {
	return &MongoPortfolioStore{coll: coll}
}

func (s *MongoPortfolioStore) Insert(ctx context.Context, p *models.Portfolio) error {
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert portfolio: %w", err)
	}
	return nil
}

func (s *MongoPortfolioStore) ListByUser(ctx context.Context, userID string) ([]models.Portfolio, error) {
	cur, err := s.coll.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	portfolios := []models.Portfolio{}
	if err := cur.All(ctx, &portfolios); err != nil {
		return nil, fmt.Errorf("decode portfolios: %w", err)
	}
	return portfolios, nil
}

func (s *MongoPortfolioStore) Get(ctx context.Context, userID, id string) (*models.Portfolio, error) {
	var p models.Portfolio
	err := s.coll.FindOne(ctx, ownedFilter(userID, id)).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find portfolio: %w", err)
	}
	return &p, nil
}

// Update applies only the fields present in the patch and refreshes
// updated_at, all in one $set so the record stays internally consistent.
func (s *MongoPortfolioStore) Update(ctx context.Context, userID, id string, patch PortfolioPatch) (*models.Portfolio, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	var p models.Portfolio
	err := s.coll.FindOneAndUpdate(
		ctx,
		ownedFilter(userID, id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update portfolio: %w", err)
	}
	return &p, nil
}

func (s *MongoPortfolioStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.coll.DeleteOne(ctx, ownedFilter(userID, id))
	if err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddAsset appends one holding and refreshes updated_at in a single
// compound update on the portfolio document.
func (s *MongoPortfolioStore) AddAsset(ctx context.Context, userID, id string, asset models.PortfolioAsset) error {
	res, err := s.coll.UpdateOne(ctx, ownedFilter(userID, id), bson.M{
		"$push": bson.M{"assets": asset},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("add asset: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func ownedFilter(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}
