package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type reportFiler interface {
	File(ctx context.Context, reporterID, reportedID int64, reason string) error
}

type blocker interface {
	Block(ctx context.Context, blockerID, blockedID int64) error
}

type SafetyHandler struct {
	reportRepo       reportFiler
	relationshipRepo blocker
}

func NewSafetyHandler(reportRepo reportFiler, relationshipRepo blocker) *SafetyHandler {
	return &SafetyHandler{
		reportRepo:       reportRepo,
		relationshipRepo: relationshipRepo,
	}
}

type reportRequest struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

func (h *SafetyHandler) ReportUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID <= 0 || req.UserID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user to report"})
	}
	if strings.TrimSpace(req.Reason) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reason is required"})
	}

	if err := h.reportRepo.File(c.Context(), userID, req.UserID, req.Reason); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to file report"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reported": true})
}

type blockRequest struct {
	UserID int64 `json:"user_id"`
}

func (h *SafetyHandler) BlockUser(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req blockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.UserID <= 0 || req.UserID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user to block"})
	}

	if err := h.relationshipRepo.Block(c.Context(), userID, req.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to block user"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"blocked": true})
}
