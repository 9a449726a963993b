package models

import "time"

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayAvailability struct {
	Available bool       `json:"available"`
	TimeSlots []TimeSlot `json:"time_slots"`
}

// AvailabilitySchedule maps weekday names ("Monday".."Sunday") to that day's
// availability. Stored as a single JSONB column per user.
type AvailabilitySchedule struct {
	ID        int64                      `json:"id"`
	UserID    int64                      `json:"user_id"`
	Days      map[string]DayAvailability `json:"days"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}
