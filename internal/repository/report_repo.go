package repository

import "context"

type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// File records a report; a user can report another user at most once.
func (r *ReportRepository) File(ctx context.Context, reporterID, reportedID int64, reason string) error {
	query := `
		INSERT INTO reports (reporter_id, reported_id, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (reporter_id, reported_id) DO UPDATE SET
			reason = EXCLUDED.reason
	`
	_, err := r.db.Exec(ctx, query, reporterID, reportedID, reason)
	return err
}

func (r *ReportRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM reports WHERE reported_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}
