package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
)

const popularDestinationsKey = "destinations:popular"

// DestinationCacheRepository caches the popular destinations list in Redis
type DestinationCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewDestinationCacheRepository creates a new cache repository with the given TTL
func NewDestinationCacheRepository(client *redis.Client, expiration time.Duration) *DestinationCacheRepository {
	return &DestinationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPopular returns the cached list or models.ErrNotFound on a miss.
func (r *DestinationCacheRepository) GetPopular(ctx context.Context) ([]models.Destination, error) {
	val, err := r.client.Get(ctx, popularDestinationsKey).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", popularDestinationsKey,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	var destinations []models.Destination
	if err := json.Unmarshal([]byte(val), &destinations); err != nil {
		logger.Log.Infow("cache get",
			"key", popularDestinationsKey,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", popularDestinationsKey,
		"result", len(destinations),
		"error", nil,
	)
	return destinations, nil
}

// SetPopular stores the list with the configured expiration.
func (r *DestinationCacheRepository) SetPopular(ctx context.Context, destinations []models.Destination) error {
	data, err := json.Marshal(destinations)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, popularDestinationsKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", popularDestinationsKey,
		"result", len(destinations),
		"error", err,
	)
	return err
}
