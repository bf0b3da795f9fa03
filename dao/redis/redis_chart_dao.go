package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"oc-server/db"
	"oc-server/models"
)

// OCCUPANCY_CHART_KEY_FORMAT keys a cached chart payload by property and window.
const OCCUPANCY_CHART_KEY_FORMAT = "occupancy_chart_v1:%s_%s_%d"
const OCCUPANCY_CHART_KEY_PREFIX = "occupancy_chart_v1:"

// RedisChartDAO handles chart payload caching using Redis.
type RedisChartDAO struct {
	client db.RedisClient
}

// NewRedisChartDAO initializes a RedisChartDAO with the Redis client.
func NewRedisChartDAO(client db.RedisClient) *RedisChartDAO {
	return &RedisChartDAO{client: client}
}

func chartKey(propertyID, startDate string, days int) string {
	return fmt.Sprintf(OCCUPANCY_CHART_KEY_FORMAT, propertyID, startDate, days)
}

// UpsertChartData caches the raw chart payload for a property's window.
func (dao *RedisChartDAO) UpsertChartData(propertyID, startDate string, days int, data *models.ChartData) error {
	key := chartKey(propertyID, startDate, days)
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal chart data for property %s: %w", propertyID, err)
	}
	if err := dao.client.Set(key, string(payload)); err != nil {
		return fmt.Errorf("failed to set chart data in redis: %w", err)
	}
	return nil
}

// GetChartData retrieves the cached chart payload for a property's window.
func (dao *RedisChartDAO) GetChartData(propertyID, startDate string, days int) (*models.ChartData, error) {
	key := chartKey(propertyID, startDate, days)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get chart data from redis: %w", err)
	}
	var data models.ChartData
	if err := json.Unmarshal([]byte(str), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart data JSON: %w", err)
	}
	return &data, nil
}

// ListCachedChartKeys returns the cache keys of every stored chart payload.
func (dao *RedisChartDAO) ListCachedChartKeys() ([]string, error) {
	keys, err := dao.client.Keys(OCCUPANCY_CHART_KEY_PREFIX + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list chart keys: %w", err)
	}

	trimmed := make([]string, 0, len(keys))
	for _, k := range keys {
		trimmed = append(trimmed, strings.TrimPrefix(k, OCCUPANCY_CHART_KEY_PREFIX))
	}
	return trimmed, nil
}

// DeleteChartData drops the cached payload for a property's window.
func (dao *RedisChartDAO) DeleteChartData(propertyID, startDate string, days int) error {
	key := chartKey(propertyID, startDate, days)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete chart key %s: %w", key, err)
	}
	log.Printf("[RedisChartDAO] Deleted chart cache for %s", key)
	return nil
}
