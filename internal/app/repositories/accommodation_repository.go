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

// AccommodationRepository handles database operations for accommodation
// listings, their rooms, visits and bookings.
type AccommodationRepository struct {
	DB *pgxpool.Pool
}

// NewAccommodationRepository creates a new instance of AccommodationRepository.
func NewAccommodationRepository(db *pgxpool.Pool) *AccommodationRepository {
	return &AccommodationRepository{DB: db}
}

func selectAccommodationQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"a.id", "a.owner_id", "a.name", "a.description", "a.college",
		"a.type", "a.gender_preference", "a.amenities", "a.address",
		"a.price", "a.is_active", "a.created_at", "a.updated_at",
	).From("accommodations a").PlaceholderFormat(squirrel.Dollar)
}

func scanAccommodation(row pgx.Row) (*models.Accommodation, error) {
	var a models.Accommodation
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Name, &a.Description, &a.College,
		&a.Type, &a.GenderPreference, &a.Amenities, &a.Address,
		&a.Price, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccommodationNotFound
		}
		return nil, err
	}
	return &a, nil
}

func applyAccommodationFilter(b squirrel.SelectBuilder, f *dto.AccommodationFilter) squirrel.SelectBuilder {
	if f.College != nil {
		b = b.Where(squirrel.Eq{"a.college": *f.College})
	}
	if f.Type != nil {
		b = b.Where(squirrel.Eq{"a.type": *f.Type})
	}
	if f.GenderPreference != nil {
		b = b.Where(squirrel.Eq{"a.gender_preference": *f.GenderPreference})
	}
	if f.MinPrice != nil {
		b = b.Where(squirrel.GtOrEq{"a.price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(squirrel.LtOrEq{"a.price": *f.MaxPrice})
	}
	// Every requested amenity must be present on the listing.
	for _, amenity := range f.Amenities {
		b = b.Where(squirrel.Expr("? = ANY(a.amenities)", amenity))
	}
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"a.name": like},
			squirrel.ILike{"a.description": like},
			squirrel.ILike{"a.address": like},
		})
	}
	b = b.Where(squirrel.Eq{"a.is_active": true})
	return b
}

var accommodationSortColumns = map[models.SortKey]string{
	models.SortRecent:    "a.created_at DESC",
	models.SortPriceAsc:  "a.price ASC",
	models.SortPriceDesc: "a.price DESC",
}

// ListAccommodations retrieves a filtered page of active accommodations
// with the total count.
func (r *AccommodationRepository) ListAccommodations(ctx context.Context, filter *dto.AccommodationFilter) ([]*models.Accommodation, int64, error) {
	countSql, countArgs, err := applyAccommodationFilter(
		squirrel.Select("count(*)").From("accommodations a").PlaceholderFormat(squirrel.Dollar),
		filter,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing accommodation count query")
		return nil, 0, err
	}
	if total == 0 {
		return []*models.Accommodation{}, 0, nil
	}

	orderBy, ok := accommodationSortColumns[filter.SortBy]
	if !ok {
		orderBy = accommodationSortColumns[models.SortRecent]
	}

	sqlStr, args, err := applyAccommodationFilter(selectAccommodationQuery(), filter).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing accommodation list query")
		return nil, 0, err
	}
	defer rows.Close()

	listings := make([]*models.Accommodation, 0)
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, 0, err
		}
		listings = append(listings, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	return listings, total, nil
}

// GetAccommodationByID retrieves a single accommodation with its rooms.
func (r *AccommodationRepository) GetAccommodationByID(ctx context.Context, id int64) (*models.Accommodation, error) {
	sqlStr, args, err := selectAccommodationQuery().Where(squirrel.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	a, err := scanAccommodation(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, err
	}

	rooms, err := r.GetRoomsByAccommodationID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Rooms = rooms

	return a, nil
}

// GetAccommodationOwner returns the owner ID of an accommodation.
func (r *AccommodationRepository) GetAccommodationOwner(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.DB.QueryRow(ctx, "SELECT owner_id FROM accommodations WHERE id = $1", id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrAccommodationNotFound
		}
		return 0, err
	}
	return ownerID, nil
}

// CreateAccommodation inserts an accommodation listing and returns its ID.
func (r *AccommodationRepository) CreateAccommodation(ctx context.Context, a *models.Accommodation) (int64, error) {
	sqlStr, args, err := squirrel.Insert("accommodations").
		Columns("owner_id", "name", "description", "college", "type", "gender_preference", "amenities", "address", "price", "is_active").
		Values(a.OwnerID, a.Name, a.Description, a.College, a.Type, a.GenderPreference, a.Amenities, a.Address, a.Price, a.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error creating accommodation")
		return 0, err
	}
	return id, nil
}

// UpdateAccommodation updates the editable fields of an accommodation.
func (r *AccommodationRepository) UpdateAccommodation(ctx context.Context, a *models.Accommodation) error {
	sqlStr, args, err := squirrel.Update("accommodations").
		Set("name", a.Name).
		Set("description", a.Description).
		Set("college", a.College).
		Set("type", a.Type).
		Set("gender_preference", a.GenderPreference).
		Set("amenities", a.Amenities).
		Set("address", a.Address).
		Set("price", a.Price).
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
		logger.Error().Err(err).Int64("accommodationID", a.ID).Msg("Error updating accommodation")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccommodationNotFound
	}
	return nil
}

// DeleteAccommodation removes an accommodation and its dependent rows.
func (r *AccommodationRepository) DeleteAccommodation(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "DELETE FROM accommodations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccommodationNotFound
	}
	return nil
}

// GetRoomsByAccommodationID lists the room categories of an accommodation.
func (r *AccommodationRepository) GetRoomsByAccommodationID(ctx context.Context, accommodationID int64) ([]*models.AccommodationRoom, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT id, accommodation_id, room_type, capacity, price, available, created_at FROM accommodation_rooms WHERE accommodation_id = $1 ORDER BY id",
		accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*models.AccommodationRoom, 0)
	for rows.Next() {
		var room models.AccommodationRoom
		if err := rows.Scan(&room.ID, &room.AccommodationID, &room.RoomType, &room.Capacity, &room.Price, &room.Available, &room.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	return rooms, rows.Err()
}

// CreateRoom adds a room category to an accommodation.
func (r *AccommodationRepository) CreateRoom(ctx context.Context, room *models.AccommodationRoom) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx,
		"INSERT INTO accommodation_rooms (accommodation_id, room_type, capacity, price, available) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		room.AccommodationID, room.RoomType, room.Capacity, room.Price, room.Available,
	).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("accommodationID", room.AccommodationID).Msg("Error creating room")
		return 0, err
	}
	return id, nil
}

// CreateVisit schedules a viewing of an accommodation.
func (r *AccommodationRepository) CreateVisit(ctx context.Context, visit *models.AccommodationVisit) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx,
		"INSERT INTO accommodation_visits (accommodation_id, user_id, visit_date, notes) VALUES ($1, $2, $3, $4) RETURNING id",
		visit.AccommodationID, visit.UserID, visit.VisitDate, visit.Notes,
	).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("accommodationID", visit.AccommodationID).Msg("Error creating visit")
		return 0, err
	}
	return id, nil
}

// CreateBooking records a booking request against an accommodation.
func (r *AccommodationRepository) CreateBooking(ctx context.Context, booking *models.AccommodationBooking) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx,
		"INSERT INTO accommodation_bookings (accommodation_id, user_id, room_id, move_in_date, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		booking.AccommodationID, booking.UserID, booking.RoomID, booking.MoveInDate, booking.Status,
	).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("accommodationID", booking.AccommodationID).Msg("Error creating booking")
		return 0, err
	}
	return id, nil
}

// ListVisitsByOwner returns the scheduled visits across the owner's
// listings, soonest first.
func (r *AccommodationRepository) ListVisitsByOwner(ctx context.Context, ownerID int64) ([]*models.AccommodationVisit, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT v.id, v.accommodation_id, v.user_id, v.visit_date, v.notes, v.created_at
		FROM accommodation_visits v
		JOIN accommodations a ON v.accommodation_id = a.id
		WHERE a.owner_id = $1
		ORDER BY v.visit_date`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := make([]*models.AccommodationVisit, 0)
	for rows.Next() {
		var v models.AccommodationVisit
		if err := rows.Scan(&v.ID, &v.AccommodationID, &v.UserID, &v.VisitDate, &v.Notes, &v.CreatedAt); err != nil {
			return nil, err
		}
		visits = append(visits, &v)
	}
	return visits, rows.Err()
}
