package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

type stubSwiper struct {
	match *models.Match
	err   error
}

func (s *stubSwiper) Swipe(ctx context.Context, swiperID, targetID int64, decision string) (*models.Match, error) {
	return s.match, s.err
}

type stubMatchLister struct {
	matches []models.Match
}

func (s *stubMatchLister) ListForUser(ctx context.Context, userID int64) ([]models.Match, error) {
	return s.matches, nil
}

func newSwipeTestApp(swiper *stubSwiper, lister *stubMatchLister) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "1")
		return c.Next()
	})
	handler := NewSwipeHandler(swiper, lister)
	app.Post("/swipes", handler.Swipe)
	app.Get("/matches", handler.ListMatches)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, []byte) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes()
}

func TestSwipeCreatesMatchOnMutualLike(t *testing.T) {
	swiper := &stubSwiper{match: &models.Match{ID: 7, UserA: 1, UserB: 2}}
	app := newSwipeTestApp(swiper, &stubMatchLister{})

	status, body := postJSON(t, app, "/swipes", map[string]any{"target_id": 2, "decision": "like"})
	if status != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", status)
	}

	var resp struct {
		Matched bool          `json:"matched"`
		Match   *models.Match `json:"match"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Matched || resp.Match == nil || resp.Match.ID != 7 {
		t.Errorf("Expected match in response, got %+v", resp)
	}
}

func TestSwipeWithoutMatch(t *testing.T) {
	app := newSwipeTestApp(&stubSwiper{}, &stubMatchLister{})

	status, body := postJSON(t, app, "/swipes", map[string]any{"target_id": 2, "decision": "pass"})
	if status != fiber.StatusCreated {
		t.Fatalf("Expected status 201, got %d", status)
	}

	var resp struct {
		Matched bool `json:"matched"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Matched {
		t.Errorf("Expected no match")
	}
}

func TestSwipeRejectsSelf(t *testing.T) {
	app := newSwipeTestApp(&stubSwiper{err: services.ErrSelfSwipe}, &stubMatchLister{})

	status, _ := postJSON(t, app, "/swipes", map[string]any{"target_id": 1, "decision": "like"})
	if status != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", status)
	}
}

func TestSwipeRejectsInvalidDecision(t *testing.T) {
	app := newSwipeTestApp(&stubSwiper{err: services.ErrInvalidDecision}, &stubMatchLister{})

	status, _ := postJSON(t, app, "/swipes", map[string]any{"target_id": 2, "decision": "maybe"})
	if status != fiber.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", status)
	}
}

func TestListMatches(t *testing.T) {
	lister := &stubMatchLister{matches: []models.Match{{ID: 1, UserA: 1, UserB: 2}}}
	app := newSwipeTestApp(&stubSwiper{}, lister)

	req := httptest.NewRequest("GET", "/matches", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Matches []models.Match `json:"matches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(body.Matches) != 1 || body.Matches[0].ID != 1 {
		t.Errorf("Unexpected matches payload: %+v", body.Matches)
	}
}
