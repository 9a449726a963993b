package repository

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type SwipeRepository struct {
	db DBTX
}

func NewSwipeRepository(db DBTX) *SwipeRepository {
	return &SwipeRepository{db: db}
}

// Record stores a swipe; a repeated swipe on the same target updates the
// decision instead of failing.
func (r *SwipeRepository) Record(ctx context.Context, swipe *models.Swipe) error {
	query := `
		INSERT INTO swipes (swiper_id, target_id, decision)
		VALUES ($1, $2, $3)
		ON CONFLICT (swiper_id, target_id) DO UPDATE SET
			decision = EXCLUDED.decision,
			created_at = NOW()
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, swipe.SwiperID, swipe.TargetID, swipe.Decision).
		Scan(&swipe.ID, &swipe.CreatedAt)
}

// HasSwiped reports any prior decision, like or pass.
func (r *SwipeRepository) HasSwiped(ctx context.Context, swiperID, targetID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM swipes WHERE swiper_id = $1 AND target_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, swiperID, targetID).Scan(&exists)
	return exists, err
}

func (r *SwipeRepository) HasLiked(ctx context.Context, swiperID, targetID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $1 AND target_id = $2 AND decision = $3
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, swiperID, targetID, models.SwipeLike).Scan(&exists)
	return exists, err
}
