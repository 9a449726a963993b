package models

import "time"

type PreferencesProfile struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	AgeMin          int               `json:"age_min"`
	AgeMax          int               `json:"age_max"`
	CityOnly        bool              `json:"city_only"`
	UniversityOnly  bool              `json:"university_only"`
	MaxDistanceKm   float64           `json:"max_distance_km"`
	QuizAnswers     map[string]string `json:"quiz_answers"`
	MustHaveTags    []string          `json:"must_have_tags"`
	DealbreakerTags []string          `json:"dealbreaker_tags"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
