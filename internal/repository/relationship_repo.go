package repository

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// RelationshipRepository answers the pair-history questions behind the
// scorer's penalties: block relationships and repeated passes.
type RelationshipRepository struct {
	db DBTX
}

func NewRelationshipRepository(db DBTX) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

func (r *RelationshipRepository) Block(ctx context.Context, blockerID, blockedID int64) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, blockerID, blockedID)
	return err
}

// WasBlocked reports a block in either direction between the pair.
func (r *RelationshipRepository) WasBlocked(ctx context.Context, a, b int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, a, b).Scan(&exists)
	return exists, err
}

// WasPassed reports whether swiperID previously passed on targetID.
func (r *RelationshipRepository) WasPassed(ctx context.Context, swiperID, targetID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM swipes
			WHERE swiper_id = $1 AND target_id = $2 AND decision = $3
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, swiperID, targetID, models.SwipePass).Scan(&exists)
	return exists, err
}
