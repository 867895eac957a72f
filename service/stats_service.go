// file: service/stats_service.go

package service

import (
	"context"
	"encoding/json"
	"go-beer-cellar-api/model"
	"go-beer-cellar-api/repository"
	"time"
)

const statsCacheTTL = 10 * time.Minute

const (
	statsOverallKey = "stats:overall"
	statsBreweryKey = "stats:brewery"
	statsStyleKey   = "stats:style"
	statsAnnualKey  = "stats:annual"
	statsRatingsKey = "stats:ratings"
)

var statsCacheKeys = []string{statsOverallKey, statsBreweryKey, statsStyleKey, statsAnnualKey, statsRatingsKey}

// StatsService serves aggregate statistics with a cache-aside Redis layer.
// The aggregates are expensive joins, so results are cached for a short TTL
// and invalidated whenever beers or reviews change.
type StatsService struct {
	repo  repository.IStatsRepository
	cache CacheClient
}

func NewStatsService(repo repository.IStatsRepository, cache CacheClient) *StatsService {
	return &StatsService{repo: repo, cache: cache}
}

// getCached runs the cache-aside protocol for one stats key: serve from
// Redis when present, otherwise load, serve and store.
func getCached[T any](s *StatsService, key string, load func() (T, error)) (T, error) {
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, key).Result()
	if err == nil {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			return value, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		s.cache.Set(ctx, key, data, statsCacheTTL)
	}
	return value, nil
}

func (s *StatsService) GetOverallStats() (*model.OverallStats, error) {
	return getCached(s, statsOverallKey, s.repo.GetOverallStats)
}

func (s *StatsService) GetBreweryStats() ([]*model.BreweryStats, error) {
	return getCached(s, statsBreweryKey, s.repo.GetBreweryStats)
}

func (s *StatsService) GetStyleStats() ([]*model.StyleStats, error) {
	return getCached(s, statsStyleKey, s.repo.GetStyleStats)
}

func (s *StatsService) GetAnnualStats() ([]*model.AnnualStats, error) {
	return getCached(s, statsAnnualKey, s.repo.GetAnnualStats)
}

func (s *StatsService) GetRatingDistribution() ([]*model.RatingCount, error) {
	return getCached(s, statsRatingsKey, s.repo.GetRatingDistribution)
}

// invalidateStatsCache drops every cached aggregate. Called by the services
// that mutate the underlying data.
func invalidateStatsCache(cache CacheClient) {
	cache.Del(context.Background(), statsCacheKeys...)
}
