package temples

// CreateTempleRequest represents the payload for creating a temple
type CreateTempleRequest struct {
	Name     string `json:"temple_name" validate:"required,min=2,max=150"`
	Location string `json:"location" validate:"max=200"`
}

// UpdateTempleRequest represents the payload for updating a temple.
// Pointer fields distinguish "not provided" from zero values.
type UpdateTempleRequest struct {
	Name     *string `json:"temple_name,omitempty" validate:"omitempty,min=2,max=150"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=200"`
}
