package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const unlockCollectionName = "achievement_unlocks"

// unlockDoc is one document per user mapping achievement id to unlock time.
type unlockDoc struct {
	UserID   string               `bson:"user_id"`
	Unlocked map[string]time.Time `bson:"unlocked"`
}

// mongoUnlockRepository implements repository.UnlockRepository using MongoDB.
type mongoUnlockRepository struct {
	collection *mongo.Collection
}

// NewMongoUnlockRepository creates an achievement-unlock repository backed by MongoDB.
func NewMongoUnlockRepository(db *mongo.Database) repository.UnlockRepository {
	return &mongoUnlockRepository{
		collection: db.Collection(unlockCollectionName),
	}
}

func (r *mongoUnlockRepository) Get(ctx context.Context, userID string) (map[string]time.Time, error) {
	var doc unlockDoc
	filter := bson.M{"user_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return map[string]time.Time{}, nil
		}
		return nil, err
	}
	if doc.Unlocked == nil {
		doc.Unlocked = map[string]time.Time{}
	}
	return doc.Unlocked, nil
}

func (r *mongoUnlockRepository) Save(ctx context.Context, userID string, unlocked map[string]time.Time) error {
	filter := bson.M{"user_id": userID}
	doc := unlockDoc{UserID: userID, Unlocked: unlocked}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, doc, opts)
	return err
}

// EnsureUnlockIndexes creates necessary indexes for the achievement_unlocks collection.
func EnsureUnlockIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
