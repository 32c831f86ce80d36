package constants

import "time"

// Redis cache keys and TTLs for the Dharma backend.
// Pattern: dharma:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	// Temple data changes rarely.
	TTL_TEMPLE_DETAIL = 2 * time.Hour
	TTL_TEMPLE_LIST   = 1 * time.Hour

	// Slot listings back the public booking flow; keep them short so
	// freshly created or mutated slots show up quickly.
	TTL_SLOT_LIST   = 2 * time.Minute
	TTL_SLOT_DETAIL = 2 * time.Minute

	// Parking occupancy is updated from the ground, near-real-time.
	TTL_PARKING_ZONES = 1 * time.Minute

	// Analytics aggregates tolerate staleness.
	TTL_ANALYTICS = 10 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "dharma"
)

// Temple cache keys
const (
	CACHE_KEY_TEMPLE_DETAIL = CACHE_PREFIX + ":temples:detail:" // + temple-id
	CACHE_KEY_TEMPLE_LIST   = CACHE_PREFIX + ":temples:list"
)

// Slot cache keys
const (
	CACHE_KEY_SLOT_DETAIL = CACHE_PREFIX + ":slots:detail:" // + slot-id
	CACHE_KEY_SLOT_LIST   = CACHE_PREFIX + ":slots:list"    // + :temple:X:date:Y
)

// Parking cache keys
const (
	CACHE_KEY_PARKING_ZONES = CACHE_PREFIX + ":parking:zones:temple:" // + temple-id
)

// Analytics cache keys
const (
	CACHE_KEY_ANALYTICS_TEMPLE = CACHE_PREFIX + ":analytics:temple:" // + temple-id
	CACHE_KEY_ANALYTICS_GLOBAL = CACHE_PREFIX + ":analytics:global"
)

// Invalidation patterns
const (
	PATTERN_INVALIDATE_TEMPLES_ALL = CACHE_PREFIX + ":temples:*"
	PATTERN_INVALIDATE_SLOTS_ALL   = CACHE_PREFIX + ":slots:*"
	PATTERN_INVALIDATE_PARKING_ALL = CACHE_PREFIX + ":parking:*"
)
