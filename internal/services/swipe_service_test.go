package services

import (
	"context"
	"testing"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type stubSwipeStore struct {
	recorded []models.Swipe
	likes    map[[2]int64]bool
}

func (s *stubSwipeStore) Record(_ context.Context, swipe *models.Swipe) error {
	s.recorded = append(s.recorded, *swipe)
	return nil
}

func (s *stubSwipeStore) HasLiked(_ context.Context, swiperID, targetID int64) (bool, error) {
	return s.likes[[2]int64{swiperID, targetID}], nil
}

type stubMatchStore struct {
	created []models.Match
}

func (s *stubMatchStore) Create(_ context.Context, userA, userB int64) (*models.Match, error) {
	match := models.Match{ID: int64(len(s.created) + 1), UserA: userA, UserB: userB}
	s.created = append(s.created, match)
	return &match, nil
}

func TestSwipeRejectsSelfAndBadDecision(t *testing.T) {
	svc := NewSwipeService(&stubSwipeStore{}, &stubMatchStore{})

	if _, err := svc.Swipe(context.Background(), 1, 1, models.SwipeLike); err != ErrSelfSwipe {
		t.Fatalf("expected ErrSelfSwipe, got %v", err)
	}
	if _, err := svc.Swipe(context.Background(), 1, 2, "superlike"); err != ErrInvalidDecision {
		t.Fatalf("expected ErrInvalidDecision, got %v", err)
	}
}

func TestSwipePassNeverCreatesMatch(t *testing.T) {
	swipes := &stubSwipeStore{likes: map[[2]int64]bool{{2, 1}: true}}
	matches := &stubMatchStore{}
	svc := NewSwipeService(swipes, matches)

	match, err := svc.Swipe(context.Background(), 1, 2, models.SwipePass)
	if err != nil {
		t.Fatalf("Swipe: %v", err)
	}
	if match != nil || len(matches.created) != 0 {
		t.Fatalf("pass must not create a match")
	}
}

func TestSwipeMutualLikeCreatesMatch(t *testing.T) {
	swipes := &stubSwipeStore{likes: map[[2]int64]bool{{2, 1}: true}}
	matches := &stubMatchStore{}
	svc := NewSwipeService(swipes, matches)

	match, err := svc.Swipe(context.Background(), 1, 2, models.SwipeLike)
	if err != nil {
		t.Fatalf("Swipe: %v", err)
	}
	if match == nil {
		t.Fatalf("expected a match on mutual like")
	}
	if match.UserA != 1 || match.UserB != 2 {
		t.Fatalf("unexpected match pair: %+v", match)
	}
}

func TestSwipeOneSidedLikeCreatesNoMatch(t *testing.T) {
	swipes := &stubSwipeStore{}
	matches := &stubMatchStore{}
	svc := NewSwipeService(swipes, matches)

	match, err := svc.Swipe(context.Background(), 1, 2, models.SwipeLike)
	if err != nil {
		t.Fatalf("Swipe: %v", err)
	}
	if match != nil || len(matches.created) != 0 {
		t.Fatalf("one-sided like must not create a match")
	}
	if len(swipes.recorded) != 1 || swipes.recorded[0].Decision != models.SwipeLike {
		t.Fatalf("expected recorded like, got %+v", swipes.recorded)
	}
}
