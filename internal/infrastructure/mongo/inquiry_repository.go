package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
	inquirydomain "github.com/havenrealty/listings-api/internal/inquiry/domain"
)

// InquiryRepository implements inquiryapp.Repository using MongoDB.
type InquiryRepository struct {
	collection *mongo.Collection
}

var _ inquiryapp.Repository = (*InquiryRepository)(nil)

func NewInquiryRepository(db *mongo.Database, collectionName string) *InquiryRepository {
	return &InquiryRepository{collection: db.Collection(collectionName)}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *inquirydomain.Inquiry) error {
	_, err := r.collection.InsertOne(ctx, newInquiryDocument(*inquiry))
	return err
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*inquirydomain.Inquiry, error) {
	var doc InquiryDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, inquiryapp.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inquiry := mapInquiryDocument(doc)
	return &inquiry, nil
}

// FailedNotificationRepository implements inquiryapp.FailedNotificationRepository using MongoDB.
type FailedNotificationRepository struct {
	collection *mongo.Collection
}

var _ inquiryapp.FailedNotificationRepository = (*FailedNotificationRepository)(nil)

func NewFailedNotificationRepository(db *mongo.Database, collectionName string) *FailedNotificationRepository {
	return &FailedNotificationRepository{collection: db.Collection(collectionName)}
}

func (r *FailedNotificationRepository) Create(ctx context.Context, failure *inquirydomain.FailedNotification) error {
	_, err := r.collection.InsertOne(ctx, newFailedNotificationDocument(*failure))
	return err
}

func (r *FailedNotificationRepository) ListPending(ctx context.Context, limit int) ([]inquirydomain.FailedNotification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"status": string(inquirydomain.DeliveryPending)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]inquirydomain.FailedNotification, 0)
	for cursor.Next(ctx) {
		var doc FailedNotificationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, mapFailedNotificationDocument(doc))
	}
	return out, cursor.Err()
}

func (r *FailedNotificationRepository) Update(ctx context.Context, failure *inquirydomain.FailedNotification) error {
	res, err := r.collection.UpdateByID(ctx, failure.ID, bson.M{"$set": bson.M{
		"error":       failure.Error,
		"attempts":    failure.Attempts,
		"status":      string(failure.Status),
		"lastTriedAt": failure.LastTriedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("failed notification %q: %w", failure.ID, inquiryapp.ErrNotFound)
	}
	return nil
}
