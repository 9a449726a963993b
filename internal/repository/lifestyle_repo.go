package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type LifestyleRepository struct {
	db DBTX
}

func NewLifestyleRepository(db DBTX) *LifestyleRepository {
	return &LifestyleRepository{db: db}
}

// GetLifestyle returns (nil, nil) when the user never completed lifestyle
// onboarding.
func (r *LifestyleRepository) GetLifestyle(ctx context.Context, userID int64) (*models.LifestyleProfile, error) {
	query := `
		SELECT id, user_id, cleanliness, sleep_schedule, smoker, pets_ok,
			   guest_frequency, noise_tolerance, hobbies, religion, show_religion,
			   political_view, show_gender, created_at, updated_at
		FROM lifestyle_profiles
		WHERE user_id = $1
	`
	var lifestyle models.LifestyleProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&lifestyle.ID,
		&lifestyle.UserID,
		&lifestyle.Cleanliness,
		&lifestyle.SleepSchedule,
		&lifestyle.Smoker,
		&lifestyle.PetsOK,
		&lifestyle.GuestFrequency,
		&lifestyle.NoiseTolerance,
		&lifestyle.Hobbies,
		&lifestyle.Religion,
		&lifestyle.ShowReligion,
		&lifestyle.PoliticalView,
		&lifestyle.ShowGender,
		&lifestyle.CreatedAt,
		&lifestyle.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lifestyle, nil
}

type LifestyleInput struct {
	Cleanliness    *string
	SleepSchedule  *string
	Smoker         *bool
	PetsOK         *bool
	GuestFrequency *string
	NoiseTolerance *string
	Hobbies        []string
	Religion       *string
	ShowReligion   bool
	PoliticalView  *string
	ShowGender     bool
}

func (r *LifestyleRepository) Upsert(ctx context.Context, userID int64, req LifestyleInput) (*models.LifestyleProfile, error) {
	query := `
		INSERT INTO lifestyle_profiles (
			user_id, cleanliness, sleep_schedule, smoker, pets_ok, guest_frequency,
			noise_tolerance, hobbies, religion, show_religion, political_view, show_gender
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			cleanliness = EXCLUDED.cleanliness,
			sleep_schedule = EXCLUDED.sleep_schedule,
			smoker = EXCLUDED.smoker,
			pets_ok = EXCLUDED.pets_ok,
			guest_frequency = EXCLUDED.guest_frequency,
			noise_tolerance = EXCLUDED.noise_tolerance,
			hobbies = EXCLUDED.hobbies,
			religion = EXCLUDED.religion,
			show_religion = EXCLUDED.show_religion,
			political_view = EXCLUDED.political_view,
			show_gender = EXCLUDED.show_gender,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		req.Cleanliness,
		req.SleepSchedule,
		req.Smoker,
		req.PetsOK,
		req.GuestFrequency,
		req.NoiseTolerance,
		req.Hobbies,
		req.Religion,
		req.ShowReligion,
		req.PoliticalView,
		req.ShowGender,
	)
	if err != nil {
		return nil, err
	}
	return r.GetLifestyle(ctx, userID)
}
