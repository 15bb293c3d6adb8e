package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// AdvertisementRepository handles database operations for advertisements.
type AdvertisementRepository struct {
	DB *pgxpool.Pool
}

// NewAdvertisementRepository creates a new instance of AdvertisementRepository.
func NewAdvertisementRepository(db *pgxpool.Pool) *AdvertisementRepository {
	return &AdvertisementRepository{DB: db}
}

func selectAdQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "title", "description", "image_url", "target_url",
		"target_audience", "placement", "expires_at", "is_active",
		"created_at", "updated_at",
	).From("advertisements").PlaceholderFormat(squirrel.Dollar)
}

func scanAd(row pgx.Row) (*models.Advertisement, error) {
	var a models.Advertisement
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.TargetURL,
		&a.TargetAudience, &a.Placement, &a.ExpiresAt, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdvertisementNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListActive returns the active, unexpired advertisements, optionally
// restricted to one placement.
func (r *AdvertisementRepository) ListActive(ctx context.Context, placement *models.AdPlacement) ([]*models.Advertisement, error) {
	b := selectAdQuery().
		Where(squirrel.Eq{"is_active": true}).
		Where("expires_at > now()").
		OrderBy("created_at DESC")
	if placement != nil {
		b = b.Where(squirrel.Eq{"placement": *placement})
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing active advertisements")
		return nil, err
	}
	defer rows.Close()

	ads := make([]*models.Advertisement, 0)
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, a)
	}
	return ads, rows.Err()
}

// ListAll returns every advertisement for the admin surface, with the
// total count.
func (r *AdvertisementRepository) ListAll(ctx context.Context, limit, offset int) ([]*models.Advertisement, int64, error) {
	var total int64
	if err := r.DB.QueryRow(ctx, "SELECT count(*) FROM advertisements").Scan(&total); err != nil {
		return nil, 0, err
	}

	sqlStr, args, err := selectAdQuery().
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing advertisements")
		return nil, 0, err
	}
	defer rows.Close()

	ads := make([]*models.Advertisement, 0)
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			return nil, 0, err
		}
		ads = append(ads, a)
	}
	return ads, total, rows.Err()
}

// GetByID retrieves a single advertisement.
func (r *AdvertisementRepository) GetByID(ctx context.Context, id int64) (*models.Advertisement, error) {
	sqlStr, args, err := selectAdQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanAd(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Create inserts an advertisement and returns its ID.
func (r *AdvertisementRepository) Create(ctx context.Context, a *models.Advertisement) (int64, error) {
	sqlStr, args, err := squirrel.Insert("advertisements").
		Columns("title", "description", "image_url", "target_url", "target_audience", "placement", "expires_at", "is_active").
		Values(a.Title, a.Description, a.ImageURL, a.TargetURL, a.TargetAudience, a.Placement, a.ExpiresAt, a.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error creating advertisement")
		return 0, err
	}
	return id, nil
}

// Update updates the editable fields of an advertisement.
func (r *AdvertisementRepository) Update(ctx context.Context, a *models.Advertisement) error {
	sqlStr, args, err := squirrel.Update("advertisements").
		Set("title", a.Title).
		Set("description", a.Description).
		Set("image_url", a.ImageURL).
		Set("target_url", a.TargetURL).
		Set("target_audience", a.TargetAudience).
		Set("placement", a.Placement).
		Set("expires_at", a.ExpiresAt).
		Set("is_active", a.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("adID", a.ID).Msg("Error updating advertisement")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvertisementNotFound
	}
	return nil
}

// Delete removes an advertisement.
func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "DELETE FROM advertisements WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdvertisementNotFound
	}
	return nil
}
