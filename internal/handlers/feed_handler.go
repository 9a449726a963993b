package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

type feedGenerator interface {
	GenerateFeed(ctx context.Context, viewerID int64, limit int) ([]models.FeedEntry, error)
}

type compatibilityScorer interface {
	Compatibility(ctx context.Context, viewerID, candidateID int64) (*models.FeedEntry, error)
}

type FeedHandler struct {
	feedService    feedGenerator
	profileService compatibilityScorer
}

func NewFeedHandler(feedService feedGenerator, profileService compatibilityScorer) *FeedHandler {
	return &FeedHandler{
		feedService:    feedService,
		profileService: profileService,
	}
}

func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	limit := parsePositiveInt(c.Query("limit"), defaultFeedLimit)
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	entries, err := h.feedService.GenerateFeed(c.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build feed"})
	}

	return c.JSON(fiber.Map{
		"feed":  entries,
		"count": len(entries),
	})
}

// GetCompatibility scores a single candidate for the profile-detail screen.
func (h *FeedHandler) GetCompatibility(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}

	entry, err := h.profileService.Compatibility(c.Context(), userID, candidateID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to score compatibility"})
	}

	return c.JSON(entry)
}
