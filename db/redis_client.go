package db

import "context"

// RedisClient defines the key-value cache operations the DAOs rely on
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
