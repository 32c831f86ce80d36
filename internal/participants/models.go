package participants

import "time"

// Participant is one person attached to a booking, with optional photo
// ID details for gate verification.
type Participant struct {
	ID            uint      `json:"participant_id" gorm:"primaryKey;autoIncrement"`
	BookingID     uint      `json:"booking_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Age           int       `json:"age" gorm:"not null"`
	Gender        string    `json:"gender" gorm:"not null"`
	PhotoIDType   string    `json:"photo_id_type,omitempty"`
	PhotoIDNumber string    `json:"photo_id_number,omitempty"`
	Category      string    `json:"category,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddParticipantRequest represents the payload for attaching a
// participant to a booking
type AddParticipantRequest struct {
	BookingID     uint   `json:"booking_id" validate:"required"`
	Name          string `json:"name" validate:"required,min=1,max=150"`
	Age           int    `json:"age" validate:"required,gte=0,lte=120"`
	Gender        string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER"`
	PhotoIDType   string `json:"photo_id_type,omitempty"`
	PhotoIDNumber string `json:"photo_id_number,omitempty"`
	Category      string `json:"category,omitempty"`
}
