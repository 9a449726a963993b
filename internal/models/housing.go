package models

import "time"

// HousingProfile carries either the offer fields or the seek fields depending
// on the owning profile's has_room mode. Switching modes clears the other
// mode's columns.
type HousingProfile struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// Offer fields (has_room = true).
	Neighborhood  *string    `json:"neighborhood,omitempty"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	Bathrooms     *int       `json:"bathrooms,omitempty"`
	RentAmount    *float64   `json:"rent_amount,omitempty"`
	BillsIncluded *bool      `json:"bills_included,omitempty"`
	AvailableFrom *time.Time `json:"available_from,omitempty"`
	AvailableTo   *time.Time `json:"available_to,omitempty"`

	// Seek fields (has_room = false).
	BudgetMin           *float64   `json:"budget_min,omitempty"`
	BudgetMax           *float64   `json:"budget_max,omitempty"`
	TargetNeighborhoods []string   `json:"target_neighborhoods,omitempty"`
	DesiredFrom         *time.Time `json:"desired_from,omitempty"`
	DesiredTo           *time.Time `json:"desired_to,omitempty"`

	Currency  *string   `json:"currency,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoveInFrom is the availability-from date for either mode: the offer's
// available_from or the seeker's desired_from.
func (h *HousingProfile) MoveInFrom(hasRoom bool) *time.Time {
	if h == nil {
		return nil
	}
	if hasRoom {
		return h.AvailableFrom
	}
	return h.DesiredFrom
}
