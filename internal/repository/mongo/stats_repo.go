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

const statsCollectionName = "user_stats"

// mongoStatsRepository implements repository.StatsRepository using MongoDB.
type mongoStatsRepository struct {
	collection *mongo.Collection
}

// NewMongoStatsRepository creates a stats repository backed by MongoDB.
func NewMongoStatsRepository(db *mongo.Database) repository.StatsRepository {
	return &mongoStatsRepository{
		collection: db.Collection(statsCollectionName),
	}
}

func (r *mongoStatsRepository) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	var stats domain.UserStats
	filter := bson.M{"user_id": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if stats.MuscleExercises == nil {
		stats.MuscleExercises = make(map[string]int)
	}
	return &stats, nil
}

func (r *mongoStatsRepository) Save(ctx context.Context, stats *domain.UserStats) error {
	filter := bson.M{"user_id": stats.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, stats, opts)
	return err
}

// EnsureStatsIndexes creates necessary indexes for the user_stats collection.
func EnsureStatsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
