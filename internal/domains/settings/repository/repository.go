package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tourcrm/infras/localdb"
	"tourcrm/shared/cache"
	"tourcrm/shared/constant"
)

// Preferences stores small user-facing settings as plain strings. The hosted
// deployment keeps them in redis so any instance can serve them, the local
// build keeps them in the badger store next to the database blob.
type Preferences interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

type redisImpl struct {
	cache cache.RedisCache
}

func New(cache cache.RedisCache) Preferences {
	return &redisImpl{cache: cache}
}

func (r *redisImpl) key(ctx context.Context, key string) string {
	orgID, _ := ctx.Value(constant.ContextKeyOrgID).(string)

	return "pref:" + orgID + ":" + key
}

func (r *redisImpl) Set(ctx context.Context, key, value string) error {
	// duration 0 stores without expiry, preferences are not cache entries.
	if err := r.cache.Save(ctx, r.key(ctx, key), value, 0); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}

func (r *redisImpl) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := r.cache.Get(ctx, r.key(ctx, key), &value)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("failed to get preference: %w", err)
	}

	return value, true, nil
}

func (r *redisImpl) Delete(ctx context.Context, key string) error {
	if err := r.cache.Delete(ctx, r.key(ctx, key)); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}

	return nil
}

type localImpl struct {
	store *localdb.Store
}

func NewLocal(store *localdb.Store) Preferences {
	return &localImpl{store: store}
}

func (l *localImpl) Set(_ context.Context, key, value string) error {
	return l.store.SetPreference(key, value) //nolint:wrapcheck
}

func (l *localImpl) Get(_ context.Context, key string) (string, bool, error) {
	return l.store.GetPreference(key) //nolint:wrapcheck
}

func (l *localImpl) Delete(_ context.Context, key string) error {
	return l.store.DeletePreference(key) //nolint:wrapcheck
}
