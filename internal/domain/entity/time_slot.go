package entity

// TimeSlot is a candidate appointment window of a doctor on a date.
// It is derived on demand and never stored.
type TimeSlot struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}
