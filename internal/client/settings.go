// ABOUTME: Cached reader for the singleton site-settings record
// ABOUTME: Wraps the settings endpoints behind a TTL cache

package client

import (
	"context"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/cache"
)

const settingsCacheKey = "site-settings"

// SettingsClient serves site settings through a TTL cache so repeated
// reads inside the window skip the network. Writes invalidate the entry.
type SettingsClient struct {
	api   *Client
	cache *cache.Cache
}

// NewSettingsClient wraps api with a settings cache using the given TTL
func NewSettingsClient(api *Client, ttl time.Duration) *SettingsClient {
	return &SettingsClient{
		api:   api,
		cache: cache.New(ttl),
	}
}

// Get returns the site settings, from cache when fresh
func (s *SettingsClient) Get(ctx context.Context) (*SiteSettings, error) {
	if val, ok := s.cache.Get(settingsCacheKey); ok {
		if settings, ok := val.(*SiteSettings); ok {
			return settings, nil
		}
	}

	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(settingsCacheKey, settings)
	return settings, nil
}

// Update writes the settings and replaces the cached copy
func (s *SettingsClient) Update(ctx context.Context, settings *SiteSettings) (*SiteSettings, error) {
	updated, err := s.api.UpdateSettings(ctx, settings)
	if err != nil {
		return nil, err
	}
	s.cache.Set(settingsCacheKey, updated)
	return updated, nil
}

// Close stops the cache sweeper
func (s *SettingsClient) Close() {
	s.cache.Stop()
}
