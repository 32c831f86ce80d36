package parking

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
	ErrZoneNotFound        = errors.New("parking zone not found")
	ErrParkingSlotNotFound = errors.New("parking slot not found")
	ErrTempleNotFound      = errors.New("temple not found")
)

type Service interface {
	CreateZone(ctx context.Context, req CreateZoneRequest) (*Zone, error)
	GetZoneByID(ctx context.Context, id uint) (*Zone, error)
	GetZones(ctx context.Context) ([]Zone, error)
	GetZonesByTemple(ctx context.Context, templeID uint) ([]Zone, error)
	UpdateZone(ctx context.Context, id uint, req UpdateZoneRequest) (*Zone, error)
	DeleteZone(ctx context.Context, id uint) error

	CreateSlot(ctx context.Context, req CreateParkingSlotRequest) (*ParkingSlot, error)
	GetSlotsByZone(ctx context.Context, zoneID uint) ([]ParkingSlot, error)
	UpdateSlot(ctx context.Context, id uint, req UpdateParkingSlotRequest) (*ParkingSlot, error)
	DeleteSlot(ctx context.Context, id uint) error
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

func (s *service) CreateZone(ctx context.Context, req CreateZoneRequest) (*Zone, error) {
	exists, err := s.repo.TempleExists(ctx, req.TempleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTempleNotFound
	}

	zone := &Zone{
		TempleID:    req.TempleID,
		TotalSlots:  req.TotalSlots,
		FreeSlots:   req.FreeSlots,
		FilledSlots: req.FilledSlots,
		TwoWheeler:  req.TwoWheeler,
		FourWheeler: req.FourWheeler,
		CCTVCount:   req.CCTVCount,
		Active:      req.Active,
	}

	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return zone, nil
}

func (s *service) GetZoneByID(ctx context.Context, id uint) (*Zone, error) {
	return s.repo.GetZoneByID(ctx, id)
}

func (s *service) GetZones(ctx context.Context) ([]Zone, error) {
	return s.repo.GetZones(ctx)
}

func (s *service) GetZonesByTemple(ctx context.Context, templeID uint) ([]Zone, error) {
	cacheKey := fmt.Sprintf("%s%d", constants.CACHE_KEY_PARKING_ZONES, templeID)

	var cached []Zone
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return cached, nil
	}

	zones, err := s.repo.GetZonesByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, zones, constants.TTL_PARKING_ZONES); err != nil {
		s.log.DebugWithContext(ctx, "failed to cache parking zones", map[string]interface{}{"error": err.Error()})
	}

	return zones, nil
}

func (s *service) UpdateZone(ctx context.Context, id uint, req UpdateZoneRequest) (*Zone, error) {
	updates := make(map[string]interface{})

	if req.TotalSlots != nil {
		updates["total_slots"] = *req.TotalSlots
	}
	if req.FreeSlots != nil {
		updates["free_slots"] = *req.FreeSlots
	}
	if req.FilledSlots != nil {
		updates["filled_slots"] = *req.FilledSlots
	}
	if req.TwoWheeler != nil {
		updates["two_wheeler"] = *req.TwoWheeler
	}
	if req.FourWheeler != nil {
		updates["four_wheeler"] = *req.FourWheeler
	}
	if req.CCTVCount != nil {
		updates["cctv_count"] = *req.CCTVCount
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateZone(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx)

	return s.repo.GetZoneByID(ctx, id)
}

func (s *service) DeleteZone(ctx context.Context, id uint) error {
	if err := s.repo.DeleteZone(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) CreateSlot(ctx context.Context, req CreateParkingSlotRequest) (*ParkingSlot, error) {
	if _, err := s.repo.GetZoneByID(ctx, req.ZoneID); err != nil {
		return nil, err
	}

	slot := &ParkingSlot{
		ZoneID:    req.ZoneID,
		Available: req.Available,
		Active:    req.Active,
		Capacity:  req.Capacity,
	}

	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return slot, nil
}

func (s *service) GetSlotsByZone(ctx context.Context, zoneID uint) ([]ParkingSlot, error) {
	if _, err := s.repo.GetZoneByID(ctx, zoneID); err != nil {
		return nil, err
	}
	return s.repo.GetSlotsByZone(ctx, zoneID)
}

func (s *service) UpdateSlot(ctx context.Context, id uint, req UpdateParkingSlotRequest) (*ParkingSlot, error) {
	updates := make(map[string]interface{})

	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateSlot(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx)

	return s.repo.GetSlotByID(ctx, id)
}

func (s *service) DeleteSlot(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSlot(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := InvalidateParkingCache(ctx, s.redisClient); err != nil {
		s.log.DebugWithContext(ctx, "failed to invalidate parking cache", map[string]interface{}{"error": err.Error()})
	}
}
