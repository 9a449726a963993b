package models

import "time"

// Enum values mirror the onboarding form options. Stored as text columns;
// validation happens at the handler layer.
const (
	CleanlinessRelaxed    = "relaxed"
	CleanlinessAverage    = "average"
	CleanlinessMeticulous = "meticulous"

	SleepEarly    = "early"
	SleepFlexible = "flexible"
	SleepNight    = "night"

	GuestsNever     = "never"
	GuestsSometimes = "sometimes"
	GuestsOften     = "often"

	NoiseLow    = "low"
	NoiseMedium = "medium"
	NoiseHigh   = "high"
)

type LifestyleProfile struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Cleanliness    *string   `json:"cleanliness"`
	SleepSchedule  *string   `json:"sleep_schedule"`
	Smoker         *bool     `json:"smoker"`
	PetsOK         *bool     `json:"pets_ok"`
	GuestFrequency *string   `json:"guest_frequency"`
	NoiseTolerance *string   `json:"noise_tolerance"`
	Hobbies        []string  `json:"hobbies"`
	Religion       *string   `json:"religion,omitempty"`
	ShowReligion   bool      `json:"show_religion"`
	PoliticalView  *string   `json:"political_view,omitempty"`
	ShowGender     bool      `json:"show_gender"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
