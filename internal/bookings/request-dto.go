package bookings

// CreateBookingRequest represents an online booking made by a
// registered user
type CreateBookingRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	TempleID    uint   `json:"temple_id" validate:"required"`
	SlotID      *uint  `json:"slot_id,omitempty"`
	BookingDate string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Special     bool   `json:"special"`
}

// KioskBookingRequest represents an offline walk-in booking captured
// at a temple kiosk by an admin
type KioskBookingRequest struct {
	TempleID             uint   `json:"temple_id" validate:"required"`
	SlotID               *uint  `json:"slot_id,omitempty"`
	MobileNumber         string `json:"mobile_number" validate:"required,min=10,max=15,numeric"`
	NumberOfParticipants int    `json:"number_of_participants" validate:"required,gte=1"`
	BookingDate          string `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Special              bool   `json:"special"`
}

// UpdateBookingRequest represents a full booking update
type UpdateBookingRequest struct {
	BookingType string  `json:"booking_type" validate:"required,oneof=ONLINE OFFLINE"`
	UserID      *string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	TempleID    uint    `json:"temple_id" validate:"required"`
	SlotID      *uint   `json:"slot_id,omitempty"`
	BookingDate string  `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Special     bool    `json:"special"`
}
