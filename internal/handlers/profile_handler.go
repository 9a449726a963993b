package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/repository"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

type profileReader interface {
	GetFullProfile(ctx context.Context, userID int64) (*services.FullProfile, error)
}

type profileUpdater interface {
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateProfileInput) (*models.Profile, error)
	SetPaused(ctx context.Context, userID int64, paused bool) error
}

type photoStore interface {
	Add(ctx context.Context, photo *models.Photo) error
	ListForUser(ctx context.Context, userID int64) ([]models.Photo, error)
	Delete(ctx context.Context, userID, photoID int64) (bool, error)
}

type ProfileHandler struct {
	profileService profileReader
	profileRepo    profileUpdater
	photoRepo      photoStore
}

func NewProfileHandler(profileService profileReader, profileRepo profileUpdater, photoRepo photoStore) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		profileRepo:    profileRepo,
		photoRepo:      photoRepo,
	}
}

func (h *ProfileHandler) GetOwnProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	return h.respondFullProfile(c, userID)
}

func (h *ProfileHandler) GetProfileByID(c *fiber.Ctx) error {
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid profile id"})
	}
	return h.respondFullProfile(c, targetID)
}

func (h *ProfileHandler) respondFullProfile(c *fiber.Ctx, userID int64) error {
	full, err := h.profileService.GetFullProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	return c.JSON(full)
}

type updateProfileRequest struct {
	FullName   *string  `json:"full_name"`
	Age        *int     `json:"age"`
	City       *string  `json:"city"`
	University *string  `json:"university"`
	Bio        *string  `json:"bio"`
	HasRoom    *bool    `json:"has_room"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Age != nil && *req.Age < 16 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "age must be at least 16"})
	}

	profile, err := h.profileRepo.UpdatePartial(c.Context(), userID, repository.UpdateProfileInput{
		FullName:   req.FullName,
		Age:        req.Age,
		City:       req.City,
		University: req.University,
		Bio:        req.Bio,
		HasRoom:    req.HasRoom,
		Lat:        req.Lat,
		Lng:        req.Lng,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(profile)
}

type pauseRequest struct {
	Paused bool `json:"paused"`
}

// SetPaused hides or restores the profile in other users' feeds.
func (h *ProfileHandler) SetPaused(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req pauseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.profileRepo.SetPaused(c.Context(), userID, req.Paused); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pause state"})
	}
	return c.JSON(fiber.Map{"paused": req.Paused})
}

type addPhotoRequest struct {
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func (h *ProfileHandler) AddPhoto(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req addPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}

	photo := &models.Photo{UserID: userID, URL: req.URL, Position: req.Position}
	if err := h.photoRepo.Add(c.Context(), photo); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add photo"})
	}
	return c.Status(fiber.StatusCreated).JSON(photo)
}

func (h *ProfileHandler) ListPhotos(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	photos, err := h.photoRepo.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list photos"})
	}
	return c.JSON(fiber.Map{"photos": photos})
}

func (h *ProfileHandler) DeletePhoto(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	photoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid photo id"})
	}

	deleted, err := h.photoRepo.Delete(c.Context(), userID, photoID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete photo"})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
