package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type PreferencesRepository struct {
	db DBTX
}

func NewPreferencesRepository(db DBTX) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// GetPreferences returns (nil, nil) when the user never saved preferences;
// the feed service turns that into an empty feed.
func (r *PreferencesRepository) GetPreferences(ctx context.Context, userID int64) (*models.PreferencesProfile, error) {
	query := `
		SELECT id, user_id, age_min, age_max, city_only, university_only,
			   max_distance_km, quiz_answers, must_have_tags, dealbreaker_tags,
			   created_at, updated_at
		FROM preferences_profiles
		WHERE user_id = $1
	`
	var prefs models.PreferencesProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.ID,
		&prefs.UserID,
		&prefs.AgeMin,
		&prefs.AgeMax,
		&prefs.CityOnly,
		&prefs.UniversityOnly,
		&prefs.MaxDistanceKm,
		&prefs.QuizAnswers,
		&prefs.MustHaveTags,
		&prefs.DealbreakerTags,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

type PreferencesInput struct {
	AgeMin          int
	AgeMax          int
	CityOnly        bool
	UniversityOnly  bool
	MaxDistanceKm   float64
	QuizAnswers     map[string]string
	MustHaveTags    []string
	DealbreakerTags []string
}

func (r *PreferencesRepository) Upsert(ctx context.Context, userID int64, req PreferencesInput) (*models.PreferencesProfile, error) {
	query := `
		INSERT INTO preferences_profiles (
			user_id, age_min, age_max, city_only, university_only,
			max_distance_km, quiz_answers, must_have_tags, dealbreaker_tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			age_min = EXCLUDED.age_min,
			age_max = EXCLUDED.age_max,
			city_only = EXCLUDED.city_only,
			university_only = EXCLUDED.university_only,
			max_distance_km = EXCLUDED.max_distance_km,
			quiz_answers = EXCLUDED.quiz_answers,
			must_have_tags = EXCLUDED.must_have_tags,
			dealbreaker_tags = EXCLUDED.dealbreaker_tags,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		req.AgeMin,
		req.AgeMax,
		req.CityOnly,
		req.UniversityOnly,
		req.MaxDistanceKm,
		req.QuizAnswers,
		req.MustHaveTags,
		req.DealbreakerTags,
	)
	if err != nil {
		return nil, err
	}
	return r.GetPreferences(ctx, userID)
}
