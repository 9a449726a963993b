package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

type swiper interface {
	Swipe(ctx context.Context, swiperID, targetID int64, decision string) (*models.Match, error)
}

type matchLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Match, error)
}

type SwipeHandler struct {
	swipeService swiper
	matchRepo    matchLister
}

func NewSwipeHandler(swipeService swiper, matchRepo matchLister) *SwipeHandler {
	return &SwipeHandler{
		swipeService: swipeService,
		matchRepo:    matchRepo,
	}
}

type swipeRequest struct {
	TargetID int64  `json:"target_id"`
	Decision string `json:"decision"`
}

func (h *SwipeHandler) Swipe(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req swipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.TargetID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target_id is required"})
	}

	match, err := h.swipeService.Swipe(c.Context(), userID, req.TargetID, req.Decision)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfSwipe):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot swipe on yourself"})
		case errors.Is(err, services.ErrInvalidDecision):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "decision must be like or pass"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record swipe"})
		}
	}

	resp := fiber.Map{"matched": match != nil}
	if match != nil {
		resp["match"] = match
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *SwipeHandler) ListMatches(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	matches, err := h.matchRepo.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list matches"})
	}
	return c.JSON(fiber.Map{"matches": matches})
}
