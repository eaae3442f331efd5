package repositories

import (
	"context"
	"errors"

	"urbannest-properties/internal/models"
	"urbannest-properties/pkg/cache"
)

type propertyCache struct{}

func NewPropertyCache() PropertyCache {
	return &propertyCache{}
}

func (c *propertyCache) GetList(ctx context.Context, key string) (*models.PropertyListResult, error) {
	var result models.PropertyListResult
	if err := cache.Get(ctx, key, &result); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (c *propertyCache) SetList(ctx context.Context, key string, result *models.PropertyListResult) error {
	return cache.Set(ctx, key, result, cache.Expiration)
}

func (c *propertyCache) GetDetail(ctx context.Context, key string) (*models.PropertyView, error) {
	var view models.PropertyView
	if err := cache.Get(ctx, key, &view); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

func (c *propertyCache) SetDetail(ctx context.Context, key string, view *models.PropertyView) error {
	return cache.Set(ctx, key, view, cache.Expiration)
}

func (c *propertyCache) InvalidateLists(ctx context.Context) error {
	return cache.DeleteByPattern(ctx, cache.ListPattern)
}

func (c *propertyCache) InvalidateDetails(ctx context.Context) error {
	return cache.DeleteByPattern(ctx, cache.DetailPattern)
}
