package analytics

import (
	"context"
	"errors"
	"fmt"

	"dharma/internal/shared/constants"
	"dharma/pkg/cache"
)

var ErrTempleNotFound = errors.New("temple not found")

// trendDays is the window for daily booking aggregates. Thirty days of
// history feeds the downstream footfall forecasting job.
const trendDays = 30

type Service interface {
	GetTempleAnalytics(ctx context.Context, templeID uint) (*TempleAnalytics, error)
	GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error)
}

type service struct {
	repo  Repository
	cache cache.Service // nil when Redis is unavailable
}

func NewService(repo Repository) Service {
	svc := &service{repo: repo}
	if client := cache.Client(); client != nil {
		svc.cache = cache.NewService(client)
	}
	return svc
}

// Aggregates are cached read-through with a TTL and never invalidated;
// staleness up to TTL_ANALYTICS is acceptable for dashboards.
func (s *service) GetTempleAnalytics(ctx context.Context, templeID uint) (*TempleAnalytics, error) {
	fetch := func() (interface{}, error) {
		return s.repo.GetTempleAnalytics(ctx, templeID, trendDays)
	}

	if s.cache == nil {
		analytics, err := fetch()
		if err != nil {
			return nil, err
		}
		return analytics.(*TempleAnalytics), nil
	}

	cacheKey := fmt.Sprintf("%s%d", constants.CACHE_KEY_ANALYTICS_TEMPLE, templeID)

	var result TempleAnalytics
	if err := s.cache.GetOrSet(ctx, cacheKey, constants.TTL_ANALYTICS, fetch, &result); err != nil {
		if errors.Is(err, ErrTempleNotFound) {
			return nil, ErrTempleNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (s *service) GetGlobalAnalytics(ctx context.Context) (*GlobalAnalytics, error) {
	fetch := func() (interface{}, error) {
		return s.repo.GetGlobalAnalytics(ctx, trendDays)
	}

	if s.cache == nil {
		analytics, err := fetch()
		if err != nil {
			return nil, err
		}
		return analytics.(*GlobalAnalytics), nil
	}

	var result GlobalAnalytics
	if err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ANALYTICS_GLOBAL, constants.TTL_ANALYTICS, fetch, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
