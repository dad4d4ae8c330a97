package models

// ScheduleItem is one entry of the wedding day programme, ordered by OrderIndex
type ScheduleItem struct {
	ID          int64  `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Icon        string `json:"icon,omitempty"`
	OrderIndex  int    `json:"orderIndex"`
	IsActive    bool   `json:"isActive"`
}
