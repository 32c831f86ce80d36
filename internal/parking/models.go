package parking

import "time"

// Zone is a parking area attached to a temple, with live occupancy
// counters fed from the ground.
type Zone struct {
	ID          uint      `json:"parking_id" gorm:"primaryKey;autoIncrement"`
	TempleID    uint      `json:"temple_id" gorm:"not null;index"`
	TotalSlots  int       `json:"total_slots" gorm:"default:0"`
	FreeSlots   int       `json:"free_slots" gorm:"default:0"`
	FilledSlots int       `json:"filled_slots" gorm:"default:0"`
	TwoWheeler  int       `json:"two_wheeler" gorm:"default:0"`
	FourWheeler int       `json:"four_wheeler" gorm:"default:0"`
	CCTVCount   int       `json:"cctv_count" gorm:"default:0"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ParkingSlot is one physical bay inside a zone
type ParkingSlot struct {
	ID        uint      `json:"slot_id" gorm:"primaryKey;autoIncrement"`
	ZoneID    uint      `json:"parking_id" gorm:"not null;index"`
	Available bool      `json:"available" gorm:"not null"`
	Active    bool      `json:"active" gorm:"default:true"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateZoneRequest represents the payload for creating a parking zone
type CreateZoneRequest struct {
	TempleID    uint `json:"temple_id" validate:"required"`
	TotalSlots  int  `json:"total_slots" validate:"gte=0"`
	FreeSlots   int  `json:"free_slots" validate:"gte=0"`
	FilledSlots int  `json:"filled_slots" validate:"gte=0"`
	TwoWheeler  int  `json:"two_wheeler" validate:"gte=0"`
	FourWheeler int  `json:"four_wheeler" validate:"gte=0"`
	CCTVCount   int  `json:"cctv_count" validate:"gte=0"`
	Active      bool `json:"active"`
}

// UpdateZoneRequest represents a partial zone update
type UpdateZoneRequest struct {
	TotalSlots  *int  `json:"total_slots,omitempty" validate:"omitempty,gte=0"`
	FreeSlots   *int  `json:"free_slots,omitempty" validate:"omitempty,gte=0"`
	FilledSlots *int  `json:"filled_slots,omitempty" validate:"omitempty,gte=0"`
	TwoWheeler  *int  `json:"two_wheeler,omitempty" validate:"omitempty,gte=0"`
	FourWheeler *int  `json:"four_wheeler,omitempty" validate:"omitempty,gte=0"`
	CCTVCount   *int  `json:"cctv_count,omitempty" validate:"omitempty,gte=0"`
	Active      *bool `json:"active,omitempty"`
}

// CreateParkingSlotRequest represents the payload for adding a bay to
// a zone
type CreateParkingSlotRequest struct {
	ZoneID    uint `json:"parking_id" validate:"required"`
	Available bool `json:"available"`
	Active    bool `json:"active"`
	Capacity  int  `json:"capacity" validate:"required,gte=1"`
}

// UpdateParkingSlotRequest represents a partial bay update
type UpdateParkingSlotRequest struct {
	Available *bool `json:"available,omitempty"`
	Active    *bool `json:"active,omitempty"`
	Capacity  *int  `json:"capacity,omitempty" validate:"omitempty,gte=1"`
}
