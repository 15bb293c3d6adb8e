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

// UserRepository handles database operations for User.
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Subject, &u.Email, &u.Name, &u.Role,
		&u.University, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func selectUserQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "subject", "email", "name", "role",
		"university", "avatar_url", "created_at", "updated_at",
	).From("users").PlaceholderFormat(squirrel.Dollar)
}

// EnsureUser upserts a user row keyed on the identity provider subject
// and returns the current row. Email and name follow the token; role is
// only written on first insert (role changes go through UpdateRole).
func (r *UserRepository) EnsureUser(ctx context.Context, subject, email, name string) (*models.User, error) {
	sql, args, err := squirrel.Insert("users").
		Columns("subject", "email", "name", "role").
		Values(subject, email, name, models.RoleStudent).
		Suffix(`ON CONFLICT (subject) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name, updated_at = now()
			RETURNING id, subject, email, name, role, university, avatar_url, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("subject", subject).Msg("Error upserting user")
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by local ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := selectUserQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// UpdateProfile updates the self-editable profile fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, name, university string, avatarURL *string) error {
	sql, args, err := squirrel.Update("users").
		Set("name", name).
		Set("university", university).
		Set("avatar_url", avatarURL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user profile")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateRole changes a user's role. Admin-only at the route layer.
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.RoleType) error {
	sql, args, err := squirrel.Update("users").
		Set("role", role).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user role")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
