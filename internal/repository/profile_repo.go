package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

const profileColumns = `
	p.id, p.user_id, p.full_name, p.age, p.city, p.university, p.bio, p.has_room,
	p.lat, p.lng, p.paused, p.banned,
	(SELECT COUNT(*) FROM photos ph WHERE ph.user_id = p.user_id) AS photo_count,
	p.onboarding_complete, p.created_at, p.updated_at`

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

// GetProfile returns (nil, nil) when no profile exists for userID.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles p
		WHERE p.user_id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// ListCandidates returns every non-banned profile except the viewer's own.
// Pause, photo and preference filtering happen in the feed service.
func (r *ProfileRepository) ListCandidates(ctx context.Context, viewerID int64) ([]models.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles p
		WHERE p.user_id <> $1 AND p.banned = FALSE
		ORDER BY p.user_id`
	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

type UpdateProfileInput struct {
	FullName   *string
	Age        *int
	City       *string
	University *string
	Bio        *string
	HasRoom    *bool
	Lat        *float64
	Lng        *float64
}

func (r *ProfileRepository) UpdatePartial(ctx context.Context, userID int64, req UpdateProfileInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = COALESCE($1, full_name),
			age = COALESCE($2, age),
			city = COALESCE($3, city),
			university = COALESCE($4, university),
			bio = COALESCE($5, bio),
			has_room = COALESCE($6, has_room),
			lat = COALESCE($7, lat),
			lng = COALESCE($8, lng),
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $9`
	_, err := r.db.Exec(ctx, query,
		req.FullName,
		req.Age,
		req.City,
		req.University,
		req.Bio,
		req.HasRoom,
		req.Lat,
		req.Lng,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return r.GetProfile(ctx, userID)
}

func (r *ProfileRepository) SetPaused(ctx context.Context, userID int64, paused bool) error {
	query := `UPDATE profiles SET paused = $1, updated_at = NOW() WHERE user_id = $2`
	_, err := r.db.Exec(ctx, query, paused, userID)
	return err
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Age,
		&profile.City,
		&profile.University,
		&profile.Bio,
		&profile.HasRoom,
		&profile.Lat,
		&profile.Lng,
		&profile.Paused,
		&profile.Banned,
		&profile.PhotoCount,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
