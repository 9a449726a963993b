package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/repository"
)

type lifestyleStore interface {
	Upsert(ctx context.Context, userID int64, req repository.LifestyleInput) (*models.LifestyleProfile, error)
}

type housingStore interface {
	UpsertOffer(ctx context.Context, userID int64, req repository.OfferInput) (*models.HousingProfile, error)
	UpsertSeek(ctx context.Context, userID int64, req repository.SeekInput) (*models.HousingProfile, error)
}

type preferencesStore interface {
	Upsert(ctx context.Context, userID int64, req repository.PreferencesInput) (*models.PreferencesProfile, error)
}

type housingModeSetter interface {
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateProfileInput) (*models.Profile, error)
}

type OnboardingHandler struct {
	lifestyleRepo   lifestyleStore
	housingRepo     housingStore
	preferencesRepo preferencesStore
	profileRepo     housingModeSetter
}

func NewOnboardingHandler(
	lifestyleRepo lifestyleStore,
	housingRepo housingStore,
	preferencesRepo preferencesStore,
	profileRepo housingModeSetter,
) *OnboardingHandler {
	return &OnboardingHandler{
		lifestyleRepo:   lifestyleRepo,
		housingRepo:     housingRepo,
		preferencesRepo: preferencesRepo,
		profileRepo:     profileRepo,
	}
}

type lifestyleRequest struct {
	Cleanliness    string   `json:"cleanliness"`
	SleepSchedule  string   `json:"sleep_schedule"`
	Smoker         *bool    `json:"smoker"`
	PetsOK         *bool    `json:"pets_ok"`
	GuestFrequency string   `json:"guest_frequency"`
	NoiseTolerance string   `json:"noise_tolerance"`
	Hobbies        []string `json:"hobbies"`
	Religion       string   `json:"religion"`
	ShowReligion   bool     `json:"show_religion"`
	PoliticalView  string   `json:"political_view"`
	ShowGender     bool     `json:"show_gender"`
}

func (h *OnboardingHandler) UpsertLifestyle(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req lifestyleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateLifestyleRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	lifestyle, err := h.lifestyleRepo.Upsert(c.Context(), userID, repository.LifestyleInput{
		Cleanliness:    optionalString(req.Cleanliness),
		SleepSchedule:  optionalString(req.SleepSchedule),
		Smoker:         req.Smoker,
		PetsOK:         req.PetsOK,
		GuestFrequency: optionalString(req.GuestFrequency),
		NoiseTolerance: optionalString(req.NoiseTolerance),
		Hobbies:        req.Hobbies,
		Religion:       optionalString(req.Religion),
		ShowReligion:   req.ShowReligion,
		PoliticalView:  optionalString(req.PoliticalView),
		ShowGender:     req.ShowGender,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save lifestyle"})
	}

	return c.JSON(lifestyle)
}

type housingRequest struct {
	Mode string `json:"mode"`

	// Offer fields.
	Neighborhood  string     `json:"neighborhood"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	RentAmount    float64    `json:"rent_amount"`
	BillsIncluded bool       `json:"bills_included"`
	AvailableFrom *time.Time `json:"available_from"`
	AvailableTo   *time.Time `json:"available_to"`

	// Seek fields.
	BudgetMin           float64    `json:"budget_min"`
	BudgetMax           float64    `json:"budget_max"`
	TargetNeighborhoods []string   `json:"target_neighborhoods"`
	DesiredFrom         *time.Time `json:"desired_from"`
	DesiredTo           *time.Time `json:"desired_to"`

	Currency string `json:"currency"`
}

// UpsertHousing saves the housing record and flips the profile's has_room
// mode to match; switching modes replaces the other mode's fields.
func (h *OnboardingHandler) UpsertHousing(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req housingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateHousingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	var housing *models.HousingProfile
	hasRoom := req.Mode == housingModeOffer
	if hasRoom {
		housing, err = h.housingRepo.UpsertOffer(c.Context(), userID, repository.OfferInput{
			Neighborhood:  req.Neighborhood,
			Bedrooms:      req.Bedrooms,
			Bathrooms:     req.Bathrooms,
			RentAmount:    req.RentAmount,
			Currency:      req.Currency,
			BillsIncluded: req.BillsIncluded,
			AvailableFrom: req.AvailableFrom,
			AvailableTo:   req.AvailableTo,
		})
	} else {
		housing, err = h.housingRepo.UpsertSeek(c.Context(), userID, repository.SeekInput{
			BudgetMin:           req.BudgetMin,
			BudgetMax:           req.BudgetMax,
			Currency:            req.Currency,
			TargetNeighborhoods: req.TargetNeighborhoods,
			DesiredFrom:         req.DesiredFrom,
			DesiredTo:           req.DesiredTo,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save housing"})
	}

	if _, err := h.profileRepo.UpdatePartial(c.Context(), userID, repository.UpdateProfileInput{HasRoom: &hasRoom}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update housing mode"})
	}

	return c.JSON(housing)
}

type preferencesRequest struct {
	AgeMin          int               `json:"age_min"`
	AgeMax          int               `json:"age_max"`
	CityOnly        bool              `json:"city_only"`
	UniversityOnly  bool              `json:"university_only"`
	MaxDistanceKm   float64           `json:"max_distance_km"`
	QuizAnswers     map[string]string `json:"quiz_answers"`
	MustHaveTags    []string          `json:"must_have_tags"`
	DealbreakerTags []string          `json:"dealbreaker_tags"`
}

func (h *OnboardingHandler) UpsertPreferences(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validatePreferencesRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	prefs, err := h.preferencesRepo.Upsert(c.Context(), userID, repository.PreferencesInput{
		AgeMin:          req.AgeMin,
		AgeMax:          req.AgeMax,
		CityOnly:        req.CityOnly,
		UniversityOnly:  req.UniversityOnly,
		MaxDistanceKm:   req.MaxDistanceKm,
		QuizAnswers:     req.QuizAnswers,
		MustHaveTags:    req.MustHaveTags,
		DealbreakerTags: req.DealbreakerTags,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save preferences"})
	}

	return c.JSON(prefs)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
