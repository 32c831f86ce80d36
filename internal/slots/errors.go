package slots

import "errors"

var (
	ErrTempleNotFound     = errors.New("temple not found")
	ErrSlotNotFound       = errors.New("slot not found")
	ErrInvalidRange       = errors.New("end time must be after start time")
	ErrOverlap            = errors.New("slot overlaps an existing slot for this temple and date")
	ErrInvalidReservation = errors.New("reserved offline tickets exceed capacity")
	ErrInvalidRemaining   = errors.New("remaining tickets out of range")
	ErrInvalidCapacity    = errors.New("capacity must be positive and remaining non-negative")
)
