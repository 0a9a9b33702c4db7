package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sashabryl/train-station-api-service/internal/domain"
	"github.com/sashabryl/train-station-api-service/pkg/redis"
)

const (
	stationCachePrefix  = "station:"
	stationListCacheKey = "stations:all"
	stationCacheTTL     = 5 * time.Minute
)

// cachedStationRepository wraps a StationRepository with a Redis read cache.
// Stations change rarely and are read on every route and journey lookup.
type cachedStationRepository struct {
	inner StationRepository
	cache *redis.Client
}

// NewCachedStationRepository creates a caching StationRepository decorator
func NewCachedStationRepository(inner StationRepository, cache *redis.Client) StationRepository {
	return &cachedStationRepository{inner: inner, cache: cache}
}

var _ StationRepository = (*cachedStationRepository)(nil)

func (r *cachedStationRepository) Create(ctx context.Context, station *domain.Station) error {
	if err := r.inner.Create(ctx, station); err != nil {
		return err
	}
	r.invalidateList(ctx)
	return nil
}

func (r *cachedStationRepository) GetByID(ctx context.Context, id string) (*domain.Station, error) {
	key := stationCachePrefix + id
	if raw, err := r.cache.Get(ctx, key).Result(); err == nil {
		var station domain.Station
		if err := json.Unmarshal([]byte(raw), &station); err == nil {
			return &station, nil
		}
	}

	station, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(station); err == nil {
		r.cache.Set(ctx, key, string(data), stationCacheTTL)
	}
	return station, nil
}

func (r *cachedStationRepository) List(ctx context.Context, nameFilter string) ([]*domain.Station, error) {
	if nameFilter != "" {
		return r.inner.List(ctx, nameFilter)
	}

	if raw, err := r.cache.Get(ctx, stationListCacheKey).Result(); err == nil {
		var stations []*domain.Station
		if err := json.Unmarshal([]byte(raw), &stations); err == nil {
			return stations, nil
		}
	}

	stations, err := r.inner.List(ctx, nameFilter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stations); err == nil {
		r.cache.Set(ctx, stationListCacheKey, string(data), stationCacheTTL)
	}
	return stations, nil
}

func (r *cachedStationRepository) Update(ctx context.Context, station *domain.Station) error {
	if err := r.inner.Update(ctx, station); err != nil {
		return err
	}
	r.cache.Del(ctx, stationCachePrefix+station.ID)
	r.invalidateList(ctx)
	return nil
}

func (r *cachedStationRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del(ctx, stationCachePrefix+id)
	r.invalidateList(ctx)
	return nil
}

func (r *cachedStationRepository) invalidateList(ctx context.Context) {
	r.cache.Del(ctx, stationListCacheKey)
}
