package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/app/models"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// VendorRepository handles database operations for vendor listings.
type VendorRepository struct {
	DB *pgxpool.Pool
}

// NewVendorRepository creates a new instance of VendorRepository.
func NewVendorRepository(db *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{DB: db}
}

func selectVendorQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"v.id", "v.owner_id", "v.name", "v.description", "v.category",
		"v.location", "v.phone", "v.average_rating", "v.total_ratings",
		"v.is_active", "v.created_at", "v.updated_at",
	).From("vendors v").PlaceholderFormat(squirrel.Dollar)
}

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Category,
		&v.Location, &v.Phone, &v.AverageRating, &v.TotalRatings,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, err
	}
	return &v, nil
}

func applyVendorFilter(b squirrel.SelectBuilder, f *dto.VendorFilter) squirrel.SelectBuilder {
	if f.Category != nil {
		b = b.Where(squirrel.Eq{"v.category": *f.Category})
	}
	if f.MinRating != nil {
		b = b.Where(squirrel.GtOrEq{"v.average_rating": *f.MinRating})
	}
	if f.IsActive != nil {
		b = b.Where(squirrel.Eq{"v.is_active": *f.IsActive})
	} else {
		b = b.Where(squirrel.Eq{"v.is_active": true})
	}
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"v.name": like},
			squirrel.ILike{"v.description": like},
		})
	}
	return b
}

var vendorSortColumns = map[models.SortKey]string{
	models.SortRecent: "v.created_at DESC",
	models.SortRating: "v.average_rating DESC, v.total_ratings DESC",
}

// ListVendors retrieves a filtered page of vendors with the total count.
func (r *VendorRepository) ListVendors(ctx context.Context, filter *dto.VendorFilter) ([]*models.Vendor, int64, error) {
	countSql, countArgs, err := applyVendorFilter(
		squirrel.Select("count(*)").From("vendors v").PlaceholderFormat(squirrel.Dollar),
		filter,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing vendor count query")
		return nil, 0, err
	}
	if total == 0 {
		return []*models.Vendor{}, 0, nil
	}

	orderBy, ok := vendorSortColumns[filter.SortBy]
	if !ok {
		orderBy = vendorSortColumns[models.SortRecent]
	}

	sqlStr, args, err := applyVendorFilter(selectVendorQuery(), filter).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing vendor list query")
		return nil, 0, err
	}
	defer rows.Close()

	vendors := make([]*models.Vendor, 0)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	return vendors, total, nil
}

// GetVendorByID retrieves a single vendor.
func (r *VendorRepository) GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	sqlStr, args, err := selectVendorQuery().Where(squirrel.Eq{"v.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanVendor(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetVendorOwner returns the owner ID of a vendor.
func (r *VendorRepository) GetVendorOwner(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.DB.QueryRow(ctx, "SELECT owner_id FROM vendors WHERE id = $1", id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrVendorNotFound
		}
		return 0, err
	}
	return ownerID, nil
}

// CreateVendor inserts a vendor listing and returns its ID.
func (r *VendorRepository) CreateVendor(ctx context.Context, v *models.Vendor) (int64, error) {
	sqlStr, args, err := squirrel.Insert("vendors").
		Columns("owner_id", "name", "description", "category", "location", "phone", "is_active").
		Values(v.OwnerID, v.Name, v.Description, v.Category, v.Location, v.Phone, v.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error creating vendor")
		return 0, err
	}
	return id, nil
}

// UpdateVendor updates the editable fields of a vendor.
func (r *VendorRepository) UpdateVendor(ctx context.Context, v *models.Vendor) error {
	sqlStr, args, err := squirrel.Update("vendors").
		Set("name", v.Name).
		Set("description", v.Description).
		Set("category", v.Category).
		Set("location", v.Location).
		Set("phone", v.Phone).
		Set("is_active", v.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": v.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("vendorID", v.ID).Msg("Error updating vendor")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVendorNotFound
	}
	return nil
}

// DeleteVendor deactivates a vendor. The row stays so existing ratings
// keep their referent; deactivated vendors drop out of default listings.
func (r *VendorRepository) DeleteVendor(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "UPDATE vendors SET is_active = false, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVendorNotFound
	}
	return nil
}
