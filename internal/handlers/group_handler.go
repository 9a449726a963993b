package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

type groupManager interface {
	CreateGroup(ctx context.Context, creatorID int64, name string, memberIDs []int64) (*models.Group, error)
	Compatibility(ctx context.Context, groupID int64) (int, error)
	SuggestMeetingTimes(ctx context.Context, groupID int64) ([]string, error)
}

type groupLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.Group, error)
}

type GroupHandler struct {
	groupService groupManager
	groupRepo    groupLister
}

func NewGroupHandler(groupService groupManager, groupRepo groupLister) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
		groupRepo:    groupRepo,
	}
}

type createGroupRequest struct {
	Name      string  `json:"name"`
	MemberIDs []int64 `json:"member_ids"`
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	group, err := h.groupService.CreateGroup(c.Context(), userID, req.Name, req.MemberIDs)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidGroupSize):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("group size must be between %d and %d", models.GroupMinSize, models.GroupMaxSize),
			})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "One or more members do not exist"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create group"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	groups, err := h.groupRepo.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list groups"})
	}
	return c.JSON(fiber.Map{"groups": groups})
}

func (h *GroupHandler) GetCompatibility(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group id"})
	}

	score, err := h.groupService.Compatibility(c.Context(), groupID)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to score group"})
	}
	return c.JSON(fiber.Map{"group_id": groupID, "score": score})
}

func (h *GroupHandler) SuggestMeetingTimes(c *fiber.Ctx) error {
	groupID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group id"})
	}

	suggestions, err := h.groupService.SuggestMeetingTimes(c.Context(), groupID)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to suggest meeting times"})
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
