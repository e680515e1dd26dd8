package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookstore/internal/httpapi/models"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:books"

// BookCache keeps the public catalog listing in redis so the landing page
// does not hit postgres on every request. Writes to the catalog must call
// Invalidate. A nil *BookCache is a no-op, which keeps redis optional.
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBookCache(redisURL string, ttl time.Duration) (*BookCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &BookCache{client: client, ttl: ttl}, nil
}

// Get returns the cached listing and whether it was present. Cache
// errors degrade to a miss.
func (c *BookCache) Get(ctx context.Context) ([]models.Book, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var books []models.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, false
	}
	return books, true
}

func (c *BookCache) Set(ctx context.Context, books []models.Book) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(books)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl).Err()
}

func (c *BookCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, catalogKey).Err()
}

func (c *BookCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
