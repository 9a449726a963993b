package repository

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type MatchRepository struct {
	db DBTX
}

func NewMatchRepository(db DBTX) *MatchRepository {
	return &MatchRepository{db: db}
}

// Create stores a match with the pair normalized so (a,b) and (b,a) map to
// the same row.
func (r *MatchRepository) Create(ctx context.Context, userA, userB int64) (*models.Match, error) {
	if userA > userB {
		userA, userB = userB, userA
	}
	query := `
		INSERT INTO matches (user_a, user_b)
		VALUES ($1, $2)
		ON CONFLICT (user_a, user_b) DO UPDATE SET user_a = EXCLUDED.user_a
		RETURNING id, user_a, user_b, created_at
	`
	var match models.Match
	err := r.db.QueryRow(ctx, query, userA, userB).
		Scan(&match.ID, &match.UserA, &match.UserB, &match.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepository) ListForUser(ctx context.Context, userID int64) ([]models.Match, error) {
	query := `
		SELECT id, user_a, user_b, created_at
		FROM matches
		WHERE user_a = $1 OR user_b = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var match models.Match
		if err := rows.Scan(&match.ID, &match.UserA, &match.UserB, &match.CreatedAt); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
