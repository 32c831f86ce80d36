package tickets

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is the persisted entry for a confirmed booking. The snapshot
// columns (slot number, slot time, metadata) let a ticket render even
// after the underlying booking is deleted.
type Ticket struct {
	ID              string     `json:"ticket_id" gorm:"primaryKey;size:64"`
	Token           string     `json:"-" gorm:"size:128;not null"`
	BookingID       uint       `json:"booking_id" gorm:"not null;index"`
	UserID          *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid"`
	TxnID           string     `json:"txn_id" gorm:"size:100"`
	SlotNo          string     `json:"slot_no" gorm:"size:20"`
	SlotTime        string     `json:"slot_time" gorm:"size:20"`
	BookingDatetime string     `json:"booking_datetime" gorm:"size:50"`
	QRPayload       string     `json:"qr_payload" gorm:"size:255"`
	MetadataJSON    string     `json:"-" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Metadata is the snapshot stored alongside a ticket at issue time.
type Metadata struct {
	Count            int    `json:"count"`
	ParticipantNames string `json:"participant_names"`
	Name             string `json:"name"`
	TempleName       string `json:"temple_name"`
	Location         string `json:"location"`
}

// ParticipantDetail is one participant line on a rendered ticket
type ParticipantDetail struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	IDType string `json:"id_type"`
	IDNo   string `json:"id_no"`
}

// View is the full ticket payload returned to scanners and the
// frontend. Built from live booking data when the booking still
// exists, otherwise from the ticket's stored snapshot.
type View struct {
	ID                  string              `json:"ticket_id"`
	BookingID           uint                `json:"booking_id"`
	TxnID               string              `json:"txn_id"`
	SlotNo              string              `json:"slot_no"`
	SlotTime            string              `json:"slot_time"`
	BookingDatetime     string              `json:"booking_datetime"`
	TempleName          string              `json:"temple_name"`
	Location            string              `json:"location"`
	Name                string              `json:"name"`
	ParticipantCount    int                 `json:"participant_count"`
	ParticipantNames    string              `json:"participant_names"`
	ParticipantsDetails []ParticipantDetail `json:"participants_details,omitempty"`
	QRPayload           string              `json:"qr_payload"`
	IsFallback          bool                `json:"is_fallback,omitempty"`
}
