package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/pkg/apperrors"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// CommentDetails is a comment row joined with the author's name.
type CommentDetails struct {
	ID         int64     `db:"id" json:"id"`
	NoteID     int64     `db:"note_id" json:"noteId"`
	UserID     int64     `db:"user_id" json:"userId"`
	Content    string    `db:"content" json:"content"`
	AuthorName string    `db:"author_name" json:"authorName"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// CommentRepository handles database operations for note comments.
type CommentRepository struct {
	DB *pgxpool.Pool
}

// NewCommentRepository creates a new instance of CommentRepository.
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{DB: db}
}

// Create inserts a comment on a note and returns the new comment ID.
func (r *CommentRepository) Create(ctx context.Context, noteID, userID int64, text string) (int64, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM notes WHERE id = $1)", noteID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.ErrNoteNotFound
	}

	sqlStr, args, err := squirrel.Insert("note_comments").
		Columns("note_id", "user_id", "content").
		Values(noteID, userID, text).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("noteID", noteID).Msg("Error creating comment")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a single comment with its author.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*CommentDetails, error) {
	sqlStr, args, err := selectCommentQuery().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var cd CommentDetails
	err = r.DB.QueryRow(ctx, sqlStr, args...).
		Scan(&cd.ID, &cd.NoteID, &cd.UserID, &cd.Content, &cd.AuthorName, &cd.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return &cd, nil
}

func selectCommentQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.note_id", "c.user_id", "c.content",
		"u.name as author_name", "c.created_at",
	).From("note_comments c").
		Join("users u ON c.user_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ListByNote returns the comments on a note, newest first, with the
// total comment count.
func (r *CommentRepository) ListByNote(ctx context.Context, noteID int64, limit, offset int) ([]*CommentDetails, int64, error) {
	var exists bool
	if err := r.DB.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM notes WHERE id = $1)", noteID).Scan(&exists); err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, apperrors.ErrNoteNotFound
	}

	var total int64
	if err := r.DB.QueryRow(ctx, "SELECT count(*) FROM note_comments WHERE note_id = $1", noteID).Scan(&total); err != nil {
		return nil, 0, err
	}

	sqlStr, args, err := selectCommentQuery().
		Where(squirrel.Eq{"c.note_id": noteID}).
		OrderBy("c.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", noteID).Msg("Error listing comments")
		return nil, 0, err
	}
	defer rows.Close()

	comments := make([]*CommentDetails, 0)
	for rows.Next() {
		var cd CommentDetails
		if err := rows.Scan(&cd.ID, &cd.NoteID, &cd.UserID, &cd.Content, &cd.AuthorName, &cd.CreatedAt); err != nil {
			return nil, 0, err
		}
		comments = append(comments, &cd)
	}

	return comments, total, rows.Err()
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.DB.Exec(ctx, "DELETE FROM note_comments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
