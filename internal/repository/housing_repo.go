package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

type HousingRepository struct {
	db DBTX
}

func NewHousingRepository(db DBTX) *HousingRepository {
	return &HousingRepository{db: db}
}

// GetHousing returns (nil, nil) when the user has no housing record.
func (r *HousingRepository) GetHousing(ctx context.Context, userID int64) (*models.HousingProfile, error) {
	query := `
		SELECT id, user_id, neighborhood, bedrooms, bathrooms, rent_amount,
			   bills_included, available_from, available_to, budget_min, budget_max,
			   target_neighborhoods, desired_from, desired_to, currency,
			   created_at, updated_at
		FROM housing_profiles
		WHERE user_id = $1
	`
	var housing models.HousingProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&housing.ID,
		&housing.UserID,
		&housing.Neighborhood,
		&housing.Bedrooms,
		&housing.Bathrooms,
		&housing.RentAmount,
		&housing.BillsIncluded,
		&housing.AvailableFrom,
		&housing.AvailableTo,
		&housing.BudgetMin,
		&housing.BudgetMax,
		&housing.TargetNeighborhoods,
		&housing.DesiredFrom,
		&housing.DesiredTo,
		&housing.Currency,
		&housing.CreatedAt,
		&housing.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &housing, nil
}

type OfferInput struct {
	Neighborhood  string
	Bedrooms      int
	Bathrooms     int
	RentAmount    float64
	Currency      string
	BillsIncluded bool
	AvailableFrom *time.Time
	AvailableTo   *time.Time
}

// UpsertOffer stores the offer-mode fields and clears any previous seek
// fields: exactly one mode is active per user.
func (r *HousingRepository) UpsertOffer(ctx context.Context, userID int64, req OfferInput) (*models.HousingProfile, error) {
	query := `
		INSERT INTO housing_profiles (
			user_id, neighborhood, bedrooms, bathrooms, rent_amount, currency,
			bills_included, available_from, available_to
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			neighborhood = EXCLUDED.neighborhood,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			rent_amount = EXCLUDED.rent_amount,
			currency = EXCLUDED.currency,
			bills_included = EXCLUDED.bills_included,
			available_from = EXCLUDED.available_from,
			available_to = EXCLUDED.available_to,
			budget_min = NULL,
			budget_max = NULL,
			target_neighborhoods = NULL,
			desired_from = NULL,
			desired_to = NULL,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		req.Neighborhood,
		req.Bedrooms,
		req.Bathrooms,
		req.RentAmount,
		req.Currency,
		req.BillsIncluded,
		req.AvailableFrom,
		req.AvailableTo,
	)
	if err != nil {
		return nil, err
	}
	return r.GetHousing(ctx, userID)
}

type SeekInput struct {
	BudgetMin           float64
	BudgetMax           float64
	Currency            string
	TargetNeighborhoods []string
	DesiredFrom         *time.Time
	DesiredTo           *time.Time
}

// UpsertSeek stores the seek-mode fields and clears any previous offer fields.
func (r *HousingRepository) UpsertSeek(ctx context.Context, userID int64, req SeekInput) (*models.HousingProfile, error) {
	query := `
		INSERT INTO housing_profiles (
			user_id, budget_min, budget_max, currency, target_neighborhoods,
			desired_from, desired_to
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			budget_min = EXCLUDED.budget_min,
			budget_max = EXCLUDED.budget_max,
			currency = EXCLUDED.currency,
			target_neighborhoods = EXCLUDED.target_neighborhoods,
			desired_from = EXCLUDED.desired_from,
			desired_to = EXCLUDED.desired_to,
			neighborhood = NULL,
			bedrooms = NULL,
			bathrooms = NULL,
			rent_amount = NULL,
			bills_included = NULL,
			available_from = NULL,
			available_to = NULL,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		req.BudgetMin,
		req.BudgetMax,
		req.Currency,
		req.TargetNeighborhoods,
		req.DesiredFrom,
		req.DesiredTo,
	)
	if err != nil {
		return nil, err
	}
	return r.GetHousing(ctx, userID)
}
