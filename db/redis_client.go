package db

import (
	"context"
	"errors"
)

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error
	// GetLocationsWithinRadius returns the JSON stored for each member within
	// radius kilometers of (lat, lon).
	GetLocationsWithinRadius(key string, lat, lon, radius float64) ([]string, error)
	// RemoveLocation drops memberKey from the geo index and deletes its JSON.
	RemoveLocation(ctx context.Context, geoKey, memberKey string) error
	GetContext() context.Context
	Ping() error
}

// ErrNil is returned by Get when the key does not exist.
var ErrNil = errors.New("redis: nil")
