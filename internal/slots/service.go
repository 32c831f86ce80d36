package slots

import (
	"context"
	"fmt"

	"dharma/internal/shared/constants"
	"dharma/pkg/cache"
	"dharma/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type Service interface {
	Create(ctx context.Context, req CreateSlotRequest) (*Slot, error)
	GetByID(ctx context.Context, id uint) (*Slot, error)
	List(ctx context.Context, filters ListFilters) ([]Slot, error)
	Update(ctx context.Context, id uint, req UpdateSlotRequest) (*Slot, error)
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

// Create validates and persists a new slot. Checks run in a fixed
// order and the first failing check wins:
//
//	temple exists -> time range -> overlap -> reservation bound ->
//	remaining bound -> capacity bound
//
// The repository repeats the overlap check inside its serializable
// insert transaction; the early check here keeps the error precedence
// stable for sequential callers.
func (s *service) Create(ctx context.Context, req CreateSlotRequest) (*Slot, error) {
	exists, err := s.repo.TempleExists(ctx, req.TempleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTempleNotFound
	}

	startMinutes, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidRange
	}
	endMinutes, err := ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if endMinutes <= startMinutes {
		return nil, ErrInvalidRange
	}

	overlaps, err := s.repo.HasOverlap(ctx, req.TempleID, req.Date, startMinutes, endMinutes)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrOverlap
	}

	if req.ReservedOfflineTickets > req.Capacity {
		return nil, ErrInvalidReservation
	}

	onlineTickets := req.Capacity - req.ReservedOfflineTickets

	remaining := onlineTickets
	if req.Remaining != nil {
		remaining = *req.Remaining
	}

	if remaining > req.Capacity {
		return nil, ErrInvalidRemaining
	}

	if req.Capacity <= 0 || remaining < 0 {
		return nil, ErrInvalidCapacity
	}

	slot := &Slot{
		TempleID:               req.TempleID,
		Date:                   req.Date,
		StartMinutes:           startMinutes,
		EndMinutes:             endMinutes,
		Capacity:               req.Capacity,
		ReservedOfflineTickets: req.ReservedOfflineTickets,
		OnlineTickets:          onlineTickets,
		Remaining:              remaining,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	s.log.LogSlotCreated(ctx, slot.ID, slot.TempleID, slot.SlotNumber)

	return slot, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Slot, error) {
	cacheKey := fmt.Sprintf("%s%d", constants.CACHE_KEY_SLOT_DETAIL, id)

	var cached Slot
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, slot, constants.TTL_SLOT_DETAIL); err != nil {
		s.log.DebugWithContext(ctx, "failed to cache slot", map[string]interface{}{"error": err.Error()})
	}

	return slot, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]Slot, error) {
	cacheKey := listCacheKey(filters)

	var cached []Slot
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		return cached, nil
	}

	slots, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, slots, constants.TTL_SLOT_LIST); err != nil {
		s.log.DebugWithContext(ctx, "failed to cache slot list", map[string]interface{}{"error": err.Error()})
	}

	return slots, nil
}

// Update applies a partial update under a row lock. The capacity branch
// and the reservation-only branch are mutually exclusive in a single
// patch and adjust remaining with different formulas:
//
//	capacity change:    remaining += newCapacity - oldCapacity
//	reservation change: remaining -= newReserved - oldReserved
//
// both floored at zero. An explicit remaining in the patch overrides
// whatever either branch computed.
func (s *service) Update(ctx context.Context, id uint, req UpdateSlotRequest) (*Slot, error) {
	var startMinutes, endMinutes *int
	if req.StartTime != nil {
		parsed, err := ParseClock(*req.StartTime)
		if err != nil {
			return nil, ErrInvalidRange
		}
		startMinutes = &parsed
	}
	if req.EndTime != nil {
		parsed, err := ParseClock(*req.EndTime)
		if err != nil {
			return nil, ErrInvalidRange
		}
		endMinutes = &parsed
	}

	slot, err := s.repo.Update(ctx, id, func(slot *Slot) error {
		if req.Date != nil {
			slot.Date = *req.Date
		}
		if startMinutes != nil {
			slot.StartMinutes = *startMinutes
		}
		if endMinutes != nil {
			slot.EndMinutes = *endMinutes
		}

		if req.Capacity != nil {
			newCapacity := *req.Capacity
			if newCapacity <= 0 {
				return ErrInvalidCapacity
			}

			diff := newCapacity - slot.Capacity

			effectiveReserved := slot.ReservedOfflineTickets
			if req.ReservedOfflineTickets != nil {
				effectiveReserved = *req.ReservedOfflineTickets
			}
			if effectiveReserved > newCapacity {
				return ErrInvalidReservation
			}

			slot.Capacity = newCapacity
			slot.ReservedOfflineTickets = effectiveReserved
			slot.OnlineTickets = slot.Capacity - slot.ReservedOfflineTickets
			slot.Remaining = maxInt(0, slot.Remaining+diff)
		} else if req.ReservedOfflineTickets != nil {
			newReserved := *req.ReservedOfflineTickets
			if newReserved > slot.Capacity {
				return ErrInvalidReservation
			}

			reservedDiff := newReserved - slot.ReservedOfflineTickets

			slot.ReservedOfflineTickets = newReserved
			slot.OnlineTickets = slot.Capacity - slot.ReservedOfflineTickets
			slot.Remaining = maxInt(0, slot.Remaining-reservedDiff)
		}

		if req.Remaining != nil {
			if *req.Remaining < 0 {
				return ErrInvalidRemaining
			}
			slot.Remaining = *req.Remaining
		}

		// Re-validate regardless of which fields changed
		if slot.EndMinutes <= slot.StartMinutes {
			return ErrInvalidRange
		}
		if slot.Remaining > slot.Capacity {
			return ErrInvalidRemaining
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return slot, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := InvalidateSlotCache(ctx, s.redisClient); err != nil {
		s.log.DebugWithContext(ctx, "failed to invalidate slot cache", map[string]interface{}{"error": err.Error()})
	}
}

func listCacheKey(filters ListFilters) string {
	templePart := "all"
	if filters.TempleID != nil {
		templePart = fmt.Sprintf("%d", *filters.TempleID)
	}
	datePart := "all"
	if filters.Date != nil {
		datePart = *filters.Date
	}
	return fmt.Sprintf("%s:temple:%s:date:%s", constants.CACHE_KEY_SLOT_LIST, templePart, datePart)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
