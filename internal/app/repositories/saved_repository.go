package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/dberrors"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// SavedTarget describes one save-able entity so the same repository
// backs saved notes, accommodations and tutors.
type SavedTarget struct {
	joinTable   string
	parentTable string
	fkColumn    string
	notFound    error
}

var (
	SavedNoteTarget = SavedTarget{
		joinTable:   "saved_notes",
		parentTable: "notes",
		fkColumn:    "note_id",
		notFound:    apperrors.ErrNoteNotFound,
	}
	SavedAccommodationTarget = SavedTarget{
		joinTable:   "saved_accommodations",
		parentTable: "accommodations",
		fkColumn:    "accommodation_id",
		notFound:    apperrors.ErrAccommodationNotFound,
	}
	SavedTutorTarget = SavedTarget{
		joinTable:   "saved_tutors",
		parentTable: "tutors",
		fkColumn:    "tutor_id",
		notFound:    apperrors.ErrTutorNotFound,
	}
)

// SavedRepository manages the per-user saved-item join tables.
type SavedRepository struct {
	DB *pgxpool.Pool
}

// NewSavedRepository creates a new instance of SavedRepository.
func NewSavedRepository(db *pgxpool.Pool) *SavedRepository {
	return &SavedRepository{DB: db}
}

// Save records that a user saved an entity. Saving an already saved
// entity is a no-op, enforced by the unique constraint on the pair.
func (r *SavedRepository) Save(ctx context.Context, target SavedTarget, userID, entityID int64) error {
	var exists bool
	existsQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", target.parentTable)
	if err := r.DB.QueryRow(ctx, existsQuery, entityID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return target.notFound
	}

	insert := fmt.Sprintf("INSERT INTO %s (user_id, %s) VALUES ($1, $2)", target.joinTable, target.fkColumn)
	if _, err := r.DB.Exec(ctx, insert, userID, entityID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		logger.Error().Err(err).Str("table", target.joinTable).Msg("Error saving item")
		return err
	}
	return nil
}

// Unsave removes a saved item. Removing an item that was never saved
// is a no-op.
func (r *SavedRepository) Unsave(ctx context.Context, target SavedTarget, userID, entityID int64) error {
	del := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1 AND %s = $2", target.joinTable, target.fkColumn)
	if _, err := r.DB.Exec(ctx, del, userID, entityID); err != nil {
		logger.Error().Err(err).Str("table", target.joinTable).Msg("Error removing saved item")
		return err
	}
	return nil
}

// IsSaved reports whether the user has saved the entity.
func (r *SavedRepository) IsSaved(ctx context.Context, target SavedTarget, userID, entityID int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE user_id = $1 AND %s = $2)", target.joinTable, target.fkColumn)
	var saved bool
	if err := r.DB.QueryRow(ctx, query, userID, entityID).Scan(&saved); err != nil {
		return false, err
	}
	return saved, nil
}

// ListIDs returns the entity IDs the user has saved, newest first.
func (r *SavedRepository) ListIDs(ctx context.Context, target SavedTarget, userID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE user_id = $1", target.joinTable)
	if err := r.DB.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		target.fkColumn, target.joinTable)
	rows, err := r.DB.Query(ctx, query, userID, limit, offset)
	if err != nil {
		logger.Error().Err(err).Str("table", target.joinTable).Msg("Error listing saved items")
		return nil, 0, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, 0, err
		}
		ids = append(ids, id)
	}

	return ids, total, rows.Err()
}
