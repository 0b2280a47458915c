package usageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeserve/database"
	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrCapacityExhausted is returned when a reserve would exceed the
// per-(date, slot) capacity ceiling.
var ErrCapacityExhausted = errors.New("slot capacity exhausted")

// UsageRepository tracks consumed capacity per (date, service, slot) bucket.
// Reserve is the commit-time re-validation: the increment-and-check is
// atomic at the storage layer, so the engine's pre-commit verdict can be
// safely stale.
type UsageRepository interface {
	ForDate(ctx context.Context, date string, serviceIDs []string) ([]models.SlotUsage, error)
	Reserve(ctx context.Context, date, serviceID, slot string, units, capacity int) error
	Release(ctx context.Context, date, serviceID, slot string, units int) error
}

// MongoUsageRepo implements UsageRepository over MongoDB.
type MongoUsageRepo struct {
	coll *mongo.Collection
}

func NewMongoUsageRepo() *MongoUsageRepo {
	return &MongoUsageRepo{coll: database.Collection("slot_usage")}
}

// EnsureIndexes creates the unique bucket index Reserve depends on.
func (repo *MongoUsageRepo) EnsureIndexes(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}, {Key: "service_id", Value: 1}, {Key: "slot", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating slot usage index: %w", err)
	}
	return nil
}

// ForDate returns the usage entries for all given services on a date.
func (repo *MongoUsageRepo) ForDate(ctx context.Context, date string, serviceIDs []string) ([]models.SlotUsage, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date}
	if len(serviceIDs) > 0 {
		filter["service_id"] = bson.M{"$in": serviceIDs}
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching slot usage: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var usage []models.SlotUsage
	if err := cursor.All(ctxWithTimeout, &usage); err != nil {
		return nil, fmt.Errorf("error decoding slot usage: %w", err)
	}
	return usage, nil
}

// Reserve atomically consumes units from a bucket, failing with
// ErrCapacityExhausted when the ceiling would be exceeded. The conditional
// update only matches while count+units stays within capacity.
func (repo *MongoUsageRepo) Reserve(ctx context.Context, date, serviceID, slot string, units, capacity int) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if units > capacity {
		return ErrCapacityExhausted
	}

	filter := bson.M{
		"date":       date,
		"service_id": serviceID,
		"slot":       slot,
		"count":      bson.M{"$lte": capacity - units},
	}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, bson.M{"$inc": bson.M{"count": units}})
	if err != nil {
		return fmt.Errorf("error reserving slot capacity: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// No bucket matched: either it does not exist yet, or it is full.
	_, err = repo.coll.InsertOne(ctxWithTimeout, models.SlotUsage{
		Date:      date,
		ServiceID: serviceID,
		Slot:      slot,
		Count:     units,
	})
	if err == nil {
		return nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("error creating slot usage bucket: %w", err)
	}

	// Lost an insert race on a fresh bucket. It exists now, so the
	// conditional update is authoritative: a miss here really is full.
	res, err = repo.coll.UpdateOne(ctxWithTimeout, filter, bson.M{"$inc": bson.M{"count": units}})
	if err != nil {
		return fmt.Errorf("error reserving slot capacity: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	return ErrCapacityExhausted
}

// Release returns units to a bucket, e.g. when a booking is cancelled. The
// count never drops below zero.
func (repo *MongoUsageRepo) Release(ctx context.Context, date, serviceID, slot string, units int) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":       date,
		"service_id": serviceID,
		"slot":       slot,
		"count":      bson.M{"$gte": units},
	}
	_, err := repo.coll.UpdateOne(ctxWithTimeout, filter, bson.M{"$inc": bson.M{"count": -units}})
	if err != nil {
		return fmt.Errorf("error releasing slot capacity: %w", err)
	}
	return nil
}
