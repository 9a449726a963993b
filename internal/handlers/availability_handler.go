package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type availabilityStore interface {
	GetAvailability(ctx context.Context, userID int64) (*models.AvailabilitySchedule, error)
	Upsert(ctx context.Context, userID int64, days map[string]models.DayAvailability) (*models.AvailabilitySchedule, error)
}

type AvailabilityHandler struct {
	availabilityRepo availabilityStore
}

func NewAvailabilityHandler(availabilityRepo availabilityStore) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityRepo: availabilityRepo}
}

var validWeekdays = map[string]struct{}{
	"Monday":    {},
	"Tuesday":   {},
	"Wednesday": {},
	"Thursday":  {},
	"Friday":    {},
	"Saturday":  {},
	"Sunday":    {},
}

type availabilityRequest struct {
	Days map[string]models.DayAvailability `json:"days"`
}

func (h *AvailabilityHandler) UpsertAvailability(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req availabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Days) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "days is required"})
	}
	for day := range req.Days {
		if _, ok := validWeekdays[day]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown day: " + day})
		}
	}

	schedule, err := h.availabilityRepo.Upsert(c.Context(), userID, req.Days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}
	return c.JSON(schedule)
}

func (h *AvailabilityHandler) GetAvailability(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	schedule, err := h.availabilityRepo.GetAvailability(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch availability"})
	}
	if schedule == nil {
		return c.JSON(fiber.Map{"days": fiber.Map{}})
	}
	return c.JSON(schedule)
}
