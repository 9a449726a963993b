package models

import "time"

type Profile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	FullName           *string   `json:"full_name"`
	Age                *int      `json:"age"`
	City               *string   `json:"city"`
	University         *string   `json:"university"`
	Bio                *string   `json:"bio"`
	HasRoom            bool      `json:"has_room"`
	Lat                *float64  `json:"lat"`
	Lng                *float64  `json:"lng"`
	Paused             bool      `json:"paused"`
	Banned             bool      `json:"banned"`
	PhotoCount         int       `json:"photo_count"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Photo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
