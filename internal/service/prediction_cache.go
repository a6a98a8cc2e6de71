package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const predictionKeyPrefix = "prediction:"

// PredictionCache is a read-through Redis cache for predictor responses.
// The predictor is deterministic for a given symptom set, so identical
// searches within the TTL skip the network hop entirely. Every failure is
// treated as a miss; the cache never breaks a search.
type PredictionCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewPredictionCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *PredictionCache {
	return &PredictionCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

// cacheKey builds an order-independent key from the symptom set.
func cacheKey(symptoms []string) string {
	sorted := make([]string, len(symptoms))
	copy(sorted, symptoms)
	sort.Strings(sorted)
	return predictionKeyPrefix + strings.Join(sorted, ",")
}

func (c *PredictionCache) Get(ctx context.Context, symptoms []string) (*entity.Prediction, bool) {
	if c.redisClient == nil {
		return nil, false
	}

	raw, err := c.redisClient.Get(ctx, cacheKey(symptoms)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Prediction cache read failed: %+v", err)
		}
		return nil, false
	}

	var prediction entity.Prediction
	if err := json.Unmarshal([]byte(raw), &prediction); err != nil {
		c.log.Warnf("Failed to decode cached prediction: %+v", err)
		return nil, false
	}

	return &prediction, true
}

func (c *PredictionCache) Set(ctx context.Context, symptoms []string, prediction *entity.Prediction) {
	if c.redisClient == nil || prediction == nil {
		return
	}

	raw, err := json.Marshal(prediction)
	if err != nil {
		c.log.Warnf("Failed to encode prediction for cache: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, cacheKey(symptoms), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Prediction cache write failed (non-fatal): %+v", err)
	}
}
