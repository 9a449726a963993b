package services

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type SwipeStore interface {
	Record(ctx context.Context, swipe *models.Swipe) error
	HasLiked(ctx context.Context, swiperID, targetID int64) (bool, error)
}

type MatchStore interface {
	Create(ctx context.Context, userA, userB int64) (*models.Match, error)
}

type SwipeService struct {
	swipes  SwipeStore
	matches MatchStore
}

func NewSwipeService(swipes SwipeStore, matches MatchStore) *SwipeService {
	return &SwipeService{swipes: swipes, matches: matches}
}

// Swipe records a like/pass decision. A mutual like always creates a match;
// there is no randomness in match creation.
func (s *SwipeService) Swipe(ctx context.Context, swiperID, targetID int64, decision string) (*models.Match, error) {
	if swiperID == targetID {
		return nil, ErrSelfSwipe
	}
	if decision != models.SwipeLike && decision != models.SwipePass {
		return nil, ErrInvalidDecision
	}

	if err := s.swipes.Record(ctx, &models.Swipe{
		SwiperID: swiperID,
		TargetID: targetID,
		Decision: decision,
	}); err != nil {
		return nil, err
	}

	if decision != models.SwipeLike {
		return nil, nil
	}

	liked, err := s.swipes.HasLiked(ctx, targetID, swiperID)
	if err != nil || !liked {
		return nil, err
	}
	return s.matches.Create(ctx, swiperID, targetID)
}
