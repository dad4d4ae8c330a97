package dto

// ScheduleItemRequest creates or replaces a schedule item
type ScheduleItemRequest struct {
	Time        string `json:"time" validate:"required,max=20"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Location    string `json:"location,omitempty" validate:"max=200"`
	Icon        string `json:"icon,omitempty" validate:"max=50"`
	OrderIndex  int    `json:"orderIndex" validate:"min=0"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
