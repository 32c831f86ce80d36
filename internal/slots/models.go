package slots

import (
	"fmt"
	"time"
)

// Slot represents one bookable darshan window at one temple on one date.
// Times are stored as minutes since midnight so the database can enforce
// range exclusion on them.
type Slot struct {
	ID                     uint      `json:"slot_id" gorm:"primaryKey;autoIncrement"`
	TempleID               uint      `json:"temple_id" gorm:"not null;index"`
	Date                   string    `json:"date" gorm:"type:date;not null"`
	StartMinutes           int       `json:"-" gorm:"not null"`
	EndMinutes             int       `json:"-" gorm:"not null"`
	SlotNumber             int       `json:"slot_number" gorm:"not null"`
	Capacity               int       `json:"capacity" gorm:"not null"`
	ReservedOfflineTickets int       `json:"reserved_offline_tickets" gorm:"not null;default:0"`
	OnlineTickets          int       `json:"online_tickets" gorm:"not null"`
	Remaining              int       `json:"remaining" gorm:"not null"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// SlotResponse is the wire representation of a slot, with clock times
// rendered as HH:MM strings.
type SlotResponse struct {
	ID                     uint      `json:"slot_id"`
	TempleID               uint      `json:"temple_id"`
	Date                   string    `json:"date"`
	StartTime              string    `json:"start_time"`
	EndTime                string    `json:"end_time"`
	SlotNumber             int       `json:"slot_number"`
	Capacity               int       `json:"capacity"`
	ReservedOfflineTickets int       `json:"reserved_offline_tickets"`
	OnlineTickets          int       `json:"online_tickets"`
	Remaining              int       `json:"remaining"`
	CreatedAt              time.Time `json:"created_at"`
}

// ToResponse converts a Slot to its wire representation
func (s *Slot) ToResponse() SlotResponse {
	return SlotResponse{
		ID:                     s.ID,
		TempleID:               s.TempleID,
		Date:                   s.Date,
		StartTime:              FormatClock(s.StartMinutes),
		EndTime:                FormatClock(s.EndMinutes),
		SlotNumber:             s.SlotNumber,
		Capacity:               s.Capacity,
		ReservedOfflineTickets: s.ReservedOfflineTickets,
		OnlineTickets:          s.OnlineTickets,
		Remaining:              s.Remaining,
		CreatedAt:              s.CreatedAt,
	}
}

// ToResponses converts a slice of slots to wire representations
func ToResponses(slots []Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, slots[i].ToResponse())
	}
	return out
}

// ParseClock converts an "HH:MM" string to minutes since midnight
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight to an "HH:MM" string
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
