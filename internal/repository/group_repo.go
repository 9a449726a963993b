package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/models"
)

// GroupRepository needs the pool rather than a bare DBTX: group creation
// writes the group row and its member rows in one transaction.
type GroupRepository struct {
	db *pgxpool.Pool
}

func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO groups (name, creator_id) VALUES ($1, $2) RETURNING id, created_at`,
		group.Name, group.CreatorID,
	).Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		return err
	}

	for _, memberID := range group.MemberIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
			group.ID, memberID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID returns (nil, nil) when the group does not exist.
func (r *GroupRepository) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.creator_id, g.created_at,
			   ARRAY(SELECT gm.user_id FROM group_members gm WHERE gm.group_id = g.id ORDER BY gm.user_id)
		FROM groups g
		WHERE g.id = $1
	`
	var group models.Group
	err := r.db.QueryRow(ctx, query, groupID).Scan(
		&group.ID,
		&group.Name,
		&group.CreatorID,
		&group.CreatedAt,
		&group.MemberIDs,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) ListForUser(ctx context.Context, userID int64) ([]models.Group, error) {
	query := `
		SELECT g.id, g.name, g.creator_id, g.created_at,
			   ARRAY(SELECT gm.user_id FROM group_members gm WHERE gm.group_id = g.id ORDER BY gm.user_id)
		FROM groups g
		JOIN group_members m ON m.group_id = g.id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatorID, &group.CreatedAt, &group.MemberIDs); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}
