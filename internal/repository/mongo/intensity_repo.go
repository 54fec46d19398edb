package mongo

import (
	"context"
	"errors"

	"github.com/Amaan1001/fitflow-ai/internal/domain"
	"github.com/Amaan1001/fitflow-ai/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const intensityCollectionName = "workout_intensity"

// intensityDoc is one history document per user. The history array keeps
// recording order; $slice caps it at the configured limit on every push.
type intensityDoc struct {
	UserID  string                    `bson:"user_id"`
	History []domain.WorkoutIntensity `bson:"history"`
}

// mongoIntensityRepository implements repository.IntensityRepository using MongoDB.
type mongoIntensityRepository struct {
	collection *mongo.Collection
}

// NewMongoIntensityRepository creates an intensity repository backed by MongoDB.
func NewMongoIntensityRepository(db *mongo.Database) repository.IntensityRepository {
	return &mongoIntensityRepository{
		collection: db.Collection(intensityCollectionName),
	}
}

func (r *mongoIntensityRepository) Append(ctx context.Context, userID string, rec domain.WorkoutIntensity) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{
		"$push": bson.M{
			"history": bson.M{
				"$each":  []domain.WorkoutIntensity{rec},
				"$slice": -repository.IntensityHistoryLimit,
			},
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *mongoIntensityRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutIntensity, error) {
	var doc intensityDoc
	filter := bson.M{"user_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.History, nil
}

// EnsureIntensityIndexes creates necessary indexes for the workout_intensity collection.
func EnsureIntensityIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
