package bookingRepo

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

// ErrBookingNotFound is returned when a booking id is unknown.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository persists finalized booking records. Records are
// append-only; a cancellation is a status change, never a deletion.
type BookingRepository interface {
	Create(ctx context.Context, record *models.BookingRecord) error
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	ListByPhone(ctx context.Context, phone string) ([]models.BookingRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// MongoBookingRepo implements BookingRepository over MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.Collection("bookings")}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, record *models.BookingRecord) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, record)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.BookingRecord
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &record, nil
}

// ListByPhone returns the booking history for a phone number, newest first.
func (repo *MongoBookingRepo) ListByPhone(ctx context.Context, phone string) ([]models.BookingRecord, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout,
		bson.M{"contact.phone": phone},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var records []models.BookingRecord
	if err := cursor.All(ctxWithTimeout, &records); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return records, nil
}

// UpdateStatus sets the booking status. Transition legality is checked by
// the caller against the status machine.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctxWithTimeout,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}
