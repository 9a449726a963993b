package models

import "time"

// CompatibilityResult is computed on demand and never persisted.
type CompatibilityResult struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// FeedEntry is one ranked candidate in a generated feed. DistanceKm is nil
// when either side has no coordinates.
type FeedEntry struct {
	Profile       Profile             `json:"profile"`
	DistanceKm    *float64            `json:"distance_km,omitempty"`
	Compatibility CompatibilityResult `json:"compatibility"`
}

type Swipe struct {
	ID        int64     `json:"id"`
	SwiperID  int64     `json:"swiper_id"`
	TargetID  int64     `json:"target_id"`
	Decision  string    `json:"decision"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	SwipeLike = "like"
	SwipePass = "pass"
)

type Match struct {
	ID        int64     `json:"id"`
	UserA     int64     `json:"user_a"`
	UserB     int64     `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
}
