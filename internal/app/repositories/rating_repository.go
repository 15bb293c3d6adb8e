package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/db"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/helpers"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// RatingTarget describes one ratable entity so a single repository can
// serve notes, vendors and tutors with identical semantics.
type RatingTarget struct {
	ratingTable string
	parentTable string
	fkColumn    string
	notFound    error
}

var (
	NoteRatingTarget = RatingTarget{
		ratingTable: "note_ratings",
		parentTable: "notes",
		fkColumn:    "note_id",
		notFound:    apperrors.ErrNoteNotFound,
	}
	VendorRatingTarget = RatingTarget{
		ratingTable: "vendor_ratings",
		parentTable: "vendors",
		fkColumn:    "vendor_id",
		notFound:    apperrors.ErrVendorNotFound,
	}
	TutorRatingTarget = RatingTarget{
		ratingTable: "tutor_ratings",
		parentTable: "tutors",
		fkColumn:    "tutor_id",
		notFound:    apperrors.ErrTutorNotFound,
	}
)

// RatingDetails is a rating row joined with the rater's display name.
// EntityID carries the foreign key of whichever target the row belongs
// to.
type RatingDetails struct {
	ID        int64     `db:"id" json:"id"`
	EntityID  int64     `db:"entity_id" json:"entityId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	Review    *string   `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	RaterName string    `db:"rater_name" json:"raterName"`
}

// RatingRepository stores per-user ratings and keeps the parent row's
// average_rating and total_ratings columns in sync.
type RatingRepository struct {
	DB *pgxpool.Pool
}

// NewRatingRepository creates a new instance of RatingRepository.
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert inserts or replaces the caller's rating for one entity and
// recomputes the entity's aggregate columns in the same transaction.
// One user holds at most one rating row per entity, enforced by a
// unique constraint on (entity, user).
func (r *RatingRepository) Upsert(ctx context.Context, target RatingTarget, entityID, userID int64, rating int, review *string) (float64, int64, error) {
	var avg float64
	var count int64

	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		existsQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", target.parentTable)
		if err := tx.QueryRow(ctx, existsQuery, entityID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return target.notFound
		}

		upsert := fmt.Sprintf(`
			INSERT INTO %s (%s, user_id, rating, review)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (%s, user_id)
			DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = now()`,
			target.ratingTable, target.fkColumn, target.fkColumn)
		if _, err := tx.Exec(ctx, upsert, entityID, userID, rating, helpers.GetNullString(review)); err != nil {
			return fmt.Errorf("failed to upsert rating: %w", err)
		}

		recompute := fmt.Sprintf(`
			UPDATE %s p SET
				average_rating = agg.avg_rating,
				total_ratings  = agg.rating_count
			FROM (
				SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS rating_count
				FROM %s WHERE %s = $1
			) agg
			WHERE p.id = $1
			RETURNING p.average_rating, p.total_ratings`,
			target.parentTable, target.ratingTable, target.fkColumn)
		if err := tx.QueryRow(ctx, recompute, entityID).Scan(&avg, &count); err != nil {
			return fmt.Errorf("failed to recompute rating aggregate: %w", err)
		}

		return nil
	})
	if err != nil {
		if !apperrors.Is(err, target.notFound) {
			logger.Error().Err(err).Int64("entityID", entityID).Str("table", target.ratingTable).Msg("Error upserting rating")
		}
		return 0, 0, err
	}

	return avg, count, nil
}

// List returns the ratings of one entity, newest first, with the total
// rating count for pagination.
func (r *RatingRepository) List(ctx context.Context, target RatingTarget, entityID int64, limit, offset int) ([]*RatingDetails, int64, error) {
	var exists bool
	existsQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", target.parentTable)
	if err := r.DB.QueryRow(ctx, existsQuery, entityID).Scan(&exists); err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, target.notFound
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s = $1", target.ratingTable, target.fkColumn)
	if err := r.DB.QueryRow(ctx, countQuery, entityID).Scan(&total); err != nil {
		return nil, 0, err
	}

	sqlStr, args, err := squirrel.Select(
		"r.id", fmt.Sprintf("r.%s", target.fkColumn), "r.user_id", "r.rating",
		"r.review", "r.created_at", "r.updated_at", "u.name as rater_name",
	).From(fmt.Sprintf("%s r", target.ratingTable)).
		Join("users u ON r.user_id = u.id").
		Where(squirrel.Eq{fmt.Sprintf("r.%s", target.fkColumn): entityID}).
		OrderBy("r.updated_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", target.ratingTable).Msg("Error listing ratings")
		return nil, 0, err
	}
	defer rows.Close()

	ratings := make([]*RatingDetails, 0)
	for rows.Next() {
		var rd RatingDetails
		if err := rows.Scan(&rd.ID, &rd.EntityID, &rd.UserID, &rd.Rating, &rd.Review, &rd.CreatedAt, &rd.UpdatedAt, &rd.RaterName); err != nil {
			return nil, 0, err
		}
		ratings = append(ratings, &rd)
	}

	return ratings, total, rows.Err()
}
