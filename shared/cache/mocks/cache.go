package mocks

import (
	"context"
	"tourcrm/shared/cache"
)

// cacheImpl is a pass-through cache for tests: every Get misses and every
// write succeeds, so services always hit their repositories.
type cacheImpl struct {
}

// Save implements cache.RedisCache.
func (c *cacheImpl) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

// Get implements cache.RedisCache.
func (c *cacheImpl) Get(_ context.Context, _ string, _ any) error {
	return cache.Nil
}

// Delete implements cache.RedisCache.
func (c *cacheImpl) Delete(_ context.Context, _ string) error {
	return nil
}

// Clear implements cache.RedisCache.
func (c *cacheImpl) Clear(_ context.Context, _ string) error {
	return nil
}

func NewCache() cache.RedisCache {
	return &cacheImpl{}
}
