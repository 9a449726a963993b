package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type AvailabilityRepository struct {
	db DBTX
}

func NewAvailabilityRepository(db DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// GetAvailability returns (nil, nil) when the user never saved a schedule;
// the suggester then falls back to the fixed suggestions.
func (r *AvailabilityRepository) GetAvailability(ctx context.Context, userID int64) (*models.AvailabilitySchedule, error) {
	query := `
		SELECT id, user_id, days, created_at, updated_at
		FROM availability_schedules
		WHERE user_id = $1
	`
	var schedule models.AvailabilitySchedule
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&schedule.ID,
		&schedule.UserID,
		&schedule.Days,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, userID int64, days map[string]models.DayAvailability) (*models.AvailabilitySchedule, error) {
	query := `
		INSERT INTO availability_schedules (user_id, days)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			days = EXCLUDED.days,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, userID, days)
	if err != nil {
		return nil, err
	}
	return r.GetAvailability(ctx, userID)
}
