package handlers

import "strings"

const (
	housingModeOffer = "offer"
	housingModeSeek  = "seek"
)

var allowedCleanliness = map[string]struct{}{
	"relaxed":    {},
	"average":    {},
	"meticulous": {},
}

var allowedSleepSchedules = map[string]struct{}{
	"early":    {},
	"flexible": {},
	"night":    {},
}

var allowedGuestFrequencies = map[string]struct{}{
	"never":     {},
	"sometimes": {},
	"often":     {},
}

var allowedNoiseTolerances = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

func validateLifestyleRequest(req lifestyleRequest) string {
	if req.Cleanliness != "" {
		if _, ok := allowedCleanliness[req.Cleanliness]; !ok {
			return "cleanliness must be one of relaxed, average, meticulous"
		}
	}
	if req.SleepSchedule != "" {
		if _, ok := allowedSleepSchedules[req.SleepSchedule]; !ok {
			return "sleep_schedule must be one of early, flexible, night"
		}
	}
	if req.GuestFrequency != "" {
		if _, ok := allowedGuestFrequencies[req.GuestFrequency]; !ok {
			return "guest_frequency must be one of never, sometimes, often"
		}
	}
	if req.NoiseTolerance != "" {
		if _, ok := allowedNoiseTolerances[req.NoiseTolerance]; !ok {
			return "noise_tolerance must be one of low, medium, high"
		}
	}
	for _, hobby := range req.Hobbies {
		if strings.TrimSpace(hobby) == "" {
			return "hobbies must not contain empty values"
		}
	}
	if req.ShowReligion && strings.TrimSpace(req.Religion) == "" {
		return "religion is required when show_religion is set"
	}
	return ""
}

func validateHousingRequest(req housingRequest) string {
	switch req.Mode {
	case housingModeOffer:
		if strings.TrimSpace(req.Neighborhood) == "" {
			return "neighborhood is required"
		}
		if req.Bedrooms <= 0 {
			return "bedrooms must be greater than 0"
		}
		if req.Bathrooms <= 0 {
			return "bathrooms must be greater than 0"
		}
		if req.RentAmount <= 0 {
			return "rent_amount must be greater than 0"
		}
	case housingModeSeek:
		if req.BudgetMin < 0 {
			return "budget_min must not be negative"
		}
		if req.BudgetMax < req.BudgetMin {
			return "budget_max must be at least budget_min"
		}
	default:
		return "mode must be offer or seek"
	}
	if strings.TrimSpace(req.Currency) == "" {
		return "currency is required"
	}
	return ""
}

func validatePreferencesRequest(req preferencesRequest) string {
	if req.AgeMin < 16 {
		return "age_min must be at least 16"
	}
	if req.AgeMax < req.AgeMin {
		return "age_max must be at least age_min"
	}
	if req.MaxDistanceKm < 0 {
		return "max_distance_km must not be negative"
	}
	return ""
}
