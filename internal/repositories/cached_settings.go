package repositories

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/towaplating/cms/internal/entities"
)

const settingsCacheKey = "settings"

// CachedSettings is a read-through cache over the settings store; the
// row changes rarely but is read on almost every page render.
type CachedSettings struct {
	repo  *SettingsStore
	cache *gocache.Cache
}

func NewCachedSettings(repo *SettingsStore) *CachedSettings {
	return &CachedSettings{repo: repo, cache: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (c *CachedSettings) Get(ctx context.Context) (*entities.Settings, error) {
	if value, found := c.cache.Get(settingsCacheKey); found {
		return value.(*entities.Settings), nil
	}

	settings, err := c.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(settingsCacheKey, settings, gocache.DefaultExpiration)
	return settings, nil
}

func (c *CachedSettings) Update(ctx context.Context, settings *entities.Settings) error {
	if err := c.repo.Update(ctx, settings); err != nil {
		return err
	}
	c.cache.Delete(settingsCacheKey)
	return nil
}
