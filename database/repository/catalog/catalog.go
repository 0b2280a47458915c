package catalogRepo

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

// ErrOfferingNotFound is returned when a service offering id is unknown.
var ErrOfferingNotFound = errors.New("service offering not found")

// CatalogRepository provides read access to the immutable service catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.ServiceOffering, error)
	List(ctx context.Context, category string) ([]models.ServiceOffering, error)
	SeedIfEmpty(ctx context.Context, offerings []models.ServiceOffering) error
}

// MongoCatalogRepo implements CatalogRepository over MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: database.Collection("services")}
}

// GetByID retrieves a single offering. An unknown id is an explicit
// ErrOfferingNotFound, never a silently dropped item.
func (repo *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.ServiceOffering, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var offering models.ServiceOffering
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&offering)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error fetching offering %s: %w", id, err)
	}
	return &offering, nil
}

// List returns offerings, optionally filtered by category.
func (repo *MongoCatalogRepo) List(ctx context.Context, category string) ([]models.ServiceOffering, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var offerings []models.ServiceOffering
	if err := cursor.All(ctxWithTimeout, &offerings); err != nil {
		return nil, fmt.Errorf("error decoding offerings: %w", err)
	}
	return offerings, nil
}

// SeedIfEmpty loads the static catalog on first start.
func (repo *MongoCatalogRepo) SeedIfEmpty(ctx context.Context, offerings []models.ServiceOffering) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctxWithTimeout, bson.M{})
	if err != nil {
		return fmt.Errorf("error counting offerings: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(offerings))
	for i, o := range offerings {
		docs[i] = o
	}
	if _, err := repo.coll.InsertMany(ctxWithTimeout, docs); err != nil {
		return fmt.Errorf("error seeding catalog: %w", err)
	}

	_, err = repo.coll.Indexes().CreateOne(ctxWithTimeout, mongo.IndexModel{
		Keys:    bson.M{"id": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating catalog index: %w", err)
	}
	return nil
}
