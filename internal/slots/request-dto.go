package slots

// CreateSlotRequest represents the payload for creating a slot
type CreateSlotRequest struct {
	TempleID               uint   `json:"temple_id" validate:"required"`
	Date                   string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime              string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime                string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity               int    `json:"capacity" validate:"required"`
	ReservedOfflineTickets int    `json:"reserved_offline_tickets" validate:"gte=0"`
	Remaining              *int   `json:"remaining,omitempty"`
}

// UpdateSlotRequest represents a partial update. Pointer fields
// distinguish "not provided" from zero values.
type UpdateSlotRequest struct {
	Date                   *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime              *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime                *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Capacity               *int    `json:"capacity,omitempty"`
	ReservedOfflineTickets *int    `json:"reserved_offline_tickets,omitempty" validate:"omitempty,gte=0"`
	Remaining              *int    `json:"remaining,omitempty"`
}

// ListFilters narrows a slot listing
type ListFilters struct {
	TempleID *uint
	Date     *string
}
