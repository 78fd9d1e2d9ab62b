package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/redis/go-redis/v9"
)

// PredictionCacheRepository caches disease predictions in Redis, keyed by
// the canonical normalized symptom set. Encoding and inference are
// deterministic, so a cached label never goes stale before its TTL.
type PredictionCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewPredictionCacheRepository creates a new repository instance with the given TTL.
func NewPredictionCacheRepository(client *redis.Client, expiration time.Duration) *PredictionCacheRepository {
	return &PredictionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached disease label for a symptom key.
func (r *PredictionCacheRepository) Get(ctx context.Context, symptomsKey string) (string, error) {
	key := fmt.Sprintf("prediction:%s", symptomsKey)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("prediction cache get",
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("prediction not found in cache for %q", symptomsKey)
		}
		return "", err
	}

	return val, nil
}

// Set caches a disease label for a symptom key with expiration.
func (r *PredictionCacheRepository) Set(ctx context.Context, symptomsKey, disease string) error {
	key := fmt.Sprintf("prediction:%s", symptomsKey)
	err := r.client.Set(ctx, key, disease, r.exp).Err()

	logger.Log.Infow("prediction cache set",
		"key", key,
		"disease", disease,
		"error", err,
	)

	return err
}
