package temples

import (
	"context"
	"errors"
	"fmt"

	"dharma/internal/shared/constants"
	"dharma/pkg/cache"
	"dharma/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTempleNotFound      = errors.New("temple not found")
	ErrTempleAlreadyExists = errors.New("temple with this name already exists")
)

type Service interface {
	Create(ctx context.Context, req CreateTempleRequest) (*Temple, error)
	GetByID(ctx context.Context, id uint) (*Temple, error)
	GetAll(ctx context.Context) ([]Temple, error)
	Update(ctx context.Context, id uint, req UpdateTempleRequest) (*Temple, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo        Repository
	redisClient *redis.Client
	log         *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:        repo,
		redisClient: cache.Client(),
		log:         logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateTempleRequest) (*Temple, error) {
	// Temple names must be unique
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrTempleNotFound) {
		return nil, fmt.Errorf("failed to check temple name: %w", err)
	}
	if existing != nil {
		return nil, ErrTempleAlreadyExists
	}

	temple := &Temple{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.repo.Create(ctx, temple); err != nil {
		return nil, fmt.Errorf("failed to create temple: %w", err)
	}

	if err := InvalidateTempleCache(ctx, s.redisClient); err != nil {
		s.log.DebugWithContext(ctx, "failed to invalidate temple cache", map[string]interface{}{"error": err.Error()})
	}

	return temple, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Temple, error) {
	cacheKey := fmt.Sprintf("%s%d", constants.CACHE_KEY_TEMPLE_DETAIL, id)

	var cached Temple
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	temple, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, temple, constants.TTL_TEMPLE_DETAIL); err != nil {
		s.log.DebugWithContext(ctx, "failed to cache temple", map[string]interface{}{"error": err.Error()})
	}

	return temple, nil
}

func (s *service) GetAll(ctx context.Context) ([]Temple, error) {
	cacheKey := constants.CACHE_KEY_TEMPLE_LIST

	var cached []Temple
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return cached, nil
	}

	temples, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, temples, constants.TTL_TEMPLE_LIST); err != nil {
		s.log.DebugWithContext(ctx, "failed to cache temple list", map[string]interface{}{"error": err.Error()})
	}

	return temples, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateTempleRequest) (*Temple, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		if *req.Name != existing.Name {
			nameTaken, err := s.repo.GetByName(ctx, *req.Name)
			if err != nil && !errors.Is(err, ErrTempleNotFound) {
				return nil, fmt.Errorf("failed to check temple name: %w", err)
			}
			if nameTaken != nil {
				return nil, ErrTempleAlreadyExists
			}
		}
		updates["name"] = *req.Name
	}

	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	if err := InvalidateTempleCache(ctx, s.redisClient); err != nil {
		s.log.DebugWithContext(ctx, "failed to invalidate temple cache", map[string]interface{}{"error": err.Error()})
	}

	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := InvalidateTempleCache(ctx, s.redisClient); err != nil {
		s.log.DebugWithContext(ctx, "failed to invalidate temple cache", map[string]interface{}{"error": err.Error()})
	}

	return nil
}
