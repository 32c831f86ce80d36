package bookings

import (
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingTypeOnline  BookingType = "ONLINE"
	BookingTypeOffline BookingType = "OFFLINE"
)

// Booking links a visitor to a temple and optionally a darshan slot.
// Kiosk bookings have no user account; they carry the walk-in mobile
// number instead.
type Booking struct {
	ID                   uint        `json:"booking_id" gorm:"primaryKey;autoIncrement"`
	BookingType          BookingType `json:"booking_type" gorm:"size:50;not null"`
	Special              bool        `json:"special" gorm:"default:false"`
	BookingDate          string      `json:"booking_date" gorm:"type:date"`
	MobileNumber         string      `json:"mobile_number" gorm:"size:15"`
	NumberOfParticipants int         `json:"number_of_participants"`
	TempleID             uint        `json:"temple_id" gorm:"not null;index"`
	UserID               *uuid.UUID  `json:"user_id,omitempty" gorm:"type:uuid;index"`
	SlotID               *uint       `json:"slot_id,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}
