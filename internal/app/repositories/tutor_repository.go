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
	"github.com/studyconnect/backend/internal/db"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// TutorDetails includes a tutor row joined with the owner's display name.
type TutorDetails struct {
	models.Tutor
	TutorName string `db:"tutor_name" json:"tutorName"`
}

// TutorRepository handles database operations for tutor profiles,
// availability slots and sessions.
type TutorRepository struct {
	DB *pgxpool.Pool
}

// NewTutorRepository creates a new instance of TutorRepository.
func NewTutorRepository(db *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{DB: db}
}

func selectTutorQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"t.id", "t.user_id", "t.headline", "t.bio", "t.subjects",
		"t.mode", "t.hourly_rate", "t.average_rating", "t.total_ratings",
		"t.is_active", "t.created_at", "t.updated_at", "u.name as tutor_name",
	).From("tutors t").
		Join("users u ON t.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanTutorDetails(row pgx.Row) (*TutorDetails, error) {
	var t TutorDetails
	err := row.Scan(
		&t.ID, &t.UserID, &t.Headline, &t.Bio, &t.Subjects,
		&t.Mode, &t.HourlyRate, &t.AverageRating, &t.TotalRatings,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt, &t.TutorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTutorNotFound
		}
		return nil, err
	}
	return &t, nil
}

func applyTutorFilter(b squirrel.SelectBuilder, f *dto.TutorFilter) squirrel.SelectBuilder {
	if f.Subject != nil {
		b = b.Where(squirrel.Expr("? = ANY(t.subjects)", *f.Subject))
	}
	if f.Mode != nil {
		b = b.Where(squirrel.Eq{"t.mode": *f.Mode})
	}
	if f.MaxHourlyRate != nil {
		b = b.Where(squirrel.LtOrEq{"t.hourly_rate": *f.MaxHourlyRate})
	}
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"t.headline": like},
			squirrel.ILike{"t.bio": like},
			squirrel.Expr("? = ANY(t.subjects)", *f.Search),
		})
	}
	b = b.Where(squirrel.Eq{"t.is_active": true})
	return b
}

var tutorSortColumns = map[models.SortKey]string{
	models.SortRecent:    "t.created_at DESC",
	models.SortRating:    "t.average_rating DESC, t.total_ratings DESC",
	models.SortPriceAsc:  "t.hourly_rate ASC",
	models.SortPriceDesc: "t.hourly_rate DESC",
}

// ListTutors retrieves a filtered page of active tutors with the total count.
func (r *TutorRepository) ListTutors(ctx context.Context, filter *dto.TutorFilter) ([]*TutorDetails, int64, error) {
	countSql, countArgs, err := applyTutorFilter(
		squirrel.Select("count(*)").From("tutors t").PlaceholderFormat(squirrel.Dollar),
		filter,
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing tutor count query")
		return nil, 0, err
	}
	if total == 0 {
		return []*TutorDetails{}, 0, nil
	}

	orderBy, ok := tutorSortColumns[filter.SortBy]
	if !ok {
		orderBy = tutorSortColumns[models.SortRecent]
	}

	sqlStr, args, err := applyTutorFilter(selectTutorQuery(), filter).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing tutor list query")
		return nil, 0, err
	}
	defer rows.Close()

	tutors := make([]*TutorDetails, 0)
	for rows.Next() {
		t, err := scanTutorDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		tutors = append(tutors, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	return tutors, total, nil
}

// GetTutorByID retrieves a single tutor with upcoming availability slots.
func (r *TutorRepository) GetTutorByID(ctx context.Context, id int64) (*TutorDetails, error) {
	sqlStr, args, err := selectTutorQuery().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTutorDetails(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, err
	}

	slots, err := r.GetUpcomingSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	t.AvailabilitySlots = slots

	return t, nil
}

// GetTutorOwner returns the user ID owning a tutor profile.
func (r *TutorRepository) GetTutorOwner(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := r.DB.QueryRow(ctx, "SELECT user_id FROM tutors WHERE id = $1", id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTutorNotFound
		}
		return 0, err
	}
	return userID, nil
}

// GetTutorByUserID retrieves the tutor profile owned by a user, if any.
func (r *TutorRepository) GetTutorByUserID(ctx context.Context, userID int64) (*TutorDetails, error) {
	sqlStr, args, err := selectTutorQuery().Where(squirrel.Eq{"t.user_id": userID}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanTutorDetails(r.DB.QueryRow(ctx, sqlStr, args...))
}

// CreateTutor inserts a tutor profile and returns its ID. A user holds
// at most one profile, enforced by a unique constraint on user_id.
func (r *TutorRepository) CreateTutor(ctx context.Context, t *models.Tutor) (int64, error) {
	sqlStr, args, err := squirrel.Insert("tutors").
		Columns("user_id", "headline", "bio", "subjects", "mode", "hourly_rate", "is_active").
		Values(t.UserID, t.Headline, t.Bio, t.Subjects, t.Mode, t.HourlyRate, t.IsActive).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error creating tutor profile")
		return 0, err
	}
	return id, nil
}

// UpdateTutor updates the editable fields of a tutor profile.
func (r *TutorRepository) UpdateTutor(ctx context.Context, t *models.Tutor) error {
	sqlStr, args, err := squirrel.Update("tutors").
		Set("headline", t.Headline).
		Set("bio", t.Bio).
		Set("subjects", t.Subjects).
		Set("mode", t.Mode).
		Set("hourly_rate", t.HourlyRate).
		Set("is_active", t.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("tutorID", t.ID).Msg("Error updating tutor")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTutorNotFound
	}
	return nil
}

// DeleteTutor removes a tutor profile and its dependent rows.
func (r *TutorRepository) DeleteTutor(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "DELETE FROM tutors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTutorNotFound
	}
	return nil
}

// GetUpcomingSlots lists a tutor's future availability slots,
// soonest first.
func (r *TutorRepository) GetUpcomingSlots(ctx context.Context, tutorID int64) ([]*models.TutorAvailabilitySlot, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT id, tutor_id, start_time, end_time, is_booked, created_at FROM tutor_availability_slots WHERE tutor_id = $1 AND start_time > now() ORDER BY start_time",
		tutorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]*models.TutorAvailabilitySlot, 0)
	for rows.Next() {
		var s models.TutorAvailabilitySlot
		if err := rows.Scan(&s.ID, &s.TutorID, &s.StartTime, &s.EndTime, &s.IsBooked, &s.CreatedAt); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

// CreateSlot publishes a new availability slot for a tutor.
func (r *TutorRepository) CreateSlot(ctx context.Context, slot *models.TutorAvailabilitySlot) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx,
		"INSERT INTO tutor_availability_slots (tutor_id, start_time, end_time) VALUES ($1, $2, $3) RETURNING id",
		slot.TutorID, slot.StartTime, slot.EndTime,
	).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Int64("tutorID", slot.TutorID).Msg("Error creating availability slot")
		return 0, err
	}
	return id, nil
}

// GetSlotByID retrieves a single availability slot.
func (r *TutorRepository) GetSlotByID(ctx context.Context, id int64) (*models.TutorAvailabilitySlot, error) {
	var s models.TutorAvailabilitySlot
	err := r.DB.QueryRow(ctx,
		"SELECT id, tutor_id, start_time, end_time, is_booked, created_at FROM tutor_availability_slots WHERE id = $1", id,
	).Scan(&s.ID, &s.TutorID, &s.StartTime, &s.EndTime, &s.IsBooked, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// DeleteSlot removes an unbooked availability slot.
func (r *TutorRepository) DeleteSlot(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "DELETE FROM tutor_availability_slots WHERE id = $1 AND is_booked = false", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		slot, err := r.GetSlotByID(ctx, id)
		if err != nil {
			return err
		}
		if slot.IsBooked {
			return apperrors.ErrSlotAlreadyBooked
		}
		return apperrors.ErrSlotNotFound
	}
	return nil
}

// BookSession books an availability slot for a student. The slot row is
// locked for the duration of the transaction so two students cannot
// book it concurrently.
func (r *TutorRepository) BookSession(ctx context.Context, tutorID, slotID, studentID int64) (*models.TutorSession, error) {
	var session models.TutorSession

	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		var slot models.TutorAvailabilitySlot
		err := tx.QueryRow(ctx,
			"SELECT id, tutor_id, start_time, end_time, is_booked FROM tutor_availability_slots WHERE id = $1 FOR UPDATE", slotID,
		).Scan(&slot.ID, &slot.TutorID, &slot.StartTime, &slot.EndTime, &slot.IsBooked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSlotNotFound
			}
			return err
		}
		if slot.TutorID != tutorID {
			return apperrors.ErrSlotNotFound
		}
		if slot.IsBooked {
			return apperrors.ErrSlotAlreadyBooked
		}

		if _, err := tx.Exec(ctx, "UPDATE tutor_availability_slots SET is_booked = true WHERE id = $1", slotID); err != nil {
			return err
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO tutor_sessions (tutor_id, student_id, slot_id, start_time, end_time, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, tutor_id, student_id, slot_id, start_time, end_time, status, created_at, updated_at`,
			tutorID, studentID, slotID, slot.StartTime, slot.EndTime, models.SessionScheduled,
		).Scan(&session.ID, &session.TutorID, &session.StudentID, &session.SlotID,
			&session.StartTime, &session.EndTime, &session.Status, &session.CreatedAt, &session.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrSlotNotFound, apperrors.ErrSlotAlreadyBooked) {
			logger.Error().Err(err).Int64("slotID", slotID).Msg("Error booking session")
		}
		return nil, err
	}

	return &session, nil
}

// GetSessionByID retrieves a single session.
func (r *TutorRepository) GetSessionByID(ctx context.Context, id int64) (*models.TutorSession, error) {
	var s models.TutorSession
	err := r.DB.QueryRow(ctx,
		"SELECT id, tutor_id, student_id, slot_id, start_time, end_time, status, created_at, updated_at FROM tutor_sessions WHERE id = $1", id,
	).Scan(&s.ID, &s.TutorID, &s.StudentID, &s.SlotID, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListSessionsByUser returns the sessions where the user is either the
// student or the tutor, soonest first.
func (r *TutorRepository) ListSessionsByUser(ctx context.Context, userID int64) ([]*models.TutorSession, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT s.id, s.tutor_id, s.student_id, s.slot_id, s.start_time, s.end_time, s.status, s.created_at, s.updated_at
		FROM tutor_sessions s
		LEFT JOIN tutors t ON s.tutor_id = t.id
		WHERE s.student_id = $1 OR t.user_id = $1
		ORDER BY s.start_time`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*models.TutorSession, 0)
	for rows.Next() {
		var s models.TutorSession
		if err := rows.Scan(&s.ID, &s.TutorID, &s.StudentID, &s.SlotID, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// UpdateSessionStatus transitions a session to a new status and frees
// the slot again when the session is cancelled.
func (r *TutorRepository) UpdateSessionStatus(ctx context.Context, id int64, status models.SessionStatus) error {
	return db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		var slotID *int64
		err := tx.QueryRow(ctx,
			"UPDATE tutor_sessions SET status = $1, updated_at = now() WHERE id = $2 RETURNING slot_id",
			status, id,
		).Scan(&slotID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSessionNotFound
			}
			return err
		}

		if status == models.SessionCancelled && slotID != nil {
			if _, err := tx.Exec(ctx, "UPDATE tutor_availability_slots SET is_booked = false WHERE id = $1", *slotID); err != nil {
				return err
			}
		}
		return nil
	})
}
