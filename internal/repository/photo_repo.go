package repository

import (
	"context"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// PhotoRepository stores photo URL records only; binary upload and storage
// live outside this service.
type PhotoRepository struct {
	db DBTX
}

func NewPhotoRepository(db DBTX) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Add(ctx context.Context, photo *models.Photo) error {
	query := `
		INSERT INTO photos (user_id, url, position)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, photo.UserID, photo.URL, photo.Position).
		Scan(&photo.ID, &photo.CreatedAt)
}

func (r *PhotoRepository) ListForUser(ctx context.Context, userID int64) ([]models.Photo, error) {
	query := `
		SELECT id, user_id, url, position, created_at
		FROM photos
		WHERE user_id = $1
		ORDER BY position, id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var photo models.Photo
		if err := rows.Scan(&photo.ID, &photo.UserID, &photo.URL, &photo.Position, &photo.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) Delete(ctx context.Context, userID, photoID int64) (bool, error) {
	query := `DELETE FROM photos WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, photoID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
