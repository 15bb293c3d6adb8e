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

// NoteDetails includes a note row joined with its uploader's name.
type NoteDetails struct {
	models.Note
	UploaderName string `db:"uploader_name" json:"uploaderName"`
}

// NoteRepository handles database operations for Note and NoteFile.
type NoteRepository struct {
	DB *pgxpool.Pool
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{DB: db}
}

func selectNoteDetailsQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.id", "n.title", "n.description", "n.subject", "n.content_type",
		"n.university", "n.tags", "n.uploader_id", "n.total_views",
		"n.total_downloads", "n.average_rating", "n.total_ratings",
		"n.created_at", "n.updated_at", "u.name as uploader_name",
	).From("notes n").
		Join("users u ON n.uploader_id = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanNoteDetails(row pgx.Row) (*NoteDetails, error) {
	var n NoteDetails
	err := row.Scan(
		&n.ID, &n.Title, &n.Description, &n.Subject, &n.ContentType,
		&n.University, &n.Tags, &n.UploaderID, &n.TotalViews,
		&n.TotalDownloads, &n.AverageRating, &n.TotalRatings,
		&n.CreatedAt, &n.UpdatedAt, &n.UploaderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

// applyNoteFilter appends one conjunctive predicate per present filter
// field. The same function feeds the page query and the count query so
// the two can never disagree.
func applyNoteFilter(b squirrel.SelectBuilder, f *dto.NoteFilter) squirrel.SelectBuilder {
	if f.Subject != nil {
		b = b.Where(squirrel.Eq{"n.subject": *f.Subject})
	}
	if f.University != nil {
		b = b.Where(squirrel.Eq{"n.university": *f.University})
	}
	if f.ContentType != nil {
		b = b.Where(squirrel.Eq{"n.content_type": *f.ContentType})
	}
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"n.title": like},
			squirrel.ILike{"n.description": like},
			squirrel.Expr("? = ANY(n.tags)", *f.Search),
		})
	}
	return b
}

// noteSortColumns whitelists the sort keys for note listings.
var noteSortColumns = map[models.SortKey]string{
	models.SortRecent:  "n.created_at DESC",
	models.SortPopular: "n.total_downloads DESC, n.total_views DESC",
	models.SortRating:  "n.average_rating DESC, n.total_ratings DESC",
}

// ListNotes retrieves a filtered, sorted, paginated page of notes and
// the total count under the same predicate set.
func (r *NoteRepository) ListNotes(ctx context.Context, filter *dto.NoteFilter) ([]*NoteDetails, int64, error) {
	countBuilder := applyNoteFilter(
		squirrel.Select("count(*)").From("notes n").PlaceholderFormat(squirrel.Dollar),
		filter,
	)

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building note count SQL")
		return nil, 0, err
	}

	var total int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing note count query")
		return nil, 0, err
	}

	if total == 0 {
		return []*NoteDetails{}, 0, nil
	}

	orderBy, ok := noteSortColumns[filter.SortBy]
	if !ok {
		orderBy = noteSortColumns[models.SortRecent]
	}

	sqlStr, args, err := applyNoteFilter(selectNoteDetailsQuery(), filter).
		OrderBy(orderBy).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building note list SQL")
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing note list query")
		return nil, 0, err
	}
	defer rows.Close()

	notes := make([]*NoteDetails, 0)
	for rows.Next() {
		note, err := scanNoteDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("database iteration error: %w", err)
	}

	return notes, total, nil
}

// GetNoteByID retrieves a single note with its attached files.
func (r *NoteRepository) GetNoteByID(ctx context.Context, id int64) (*NoteDetails, error) {
	sqlStr, args, err := selectNoteDetailsQuery().Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	note, err := scanNoteDetails(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, err
	}

	files, err := r.GetFilesByNoteID(ctx, id)
	if err != nil {
		return nil, err
	}
	note.Files = files

	return note, nil
}

// CreateNoteWithFiles inserts a note and its file rows in one
// transaction, so a crash cannot leave a note without its files.
func (r *NoteRepository) CreateNoteWithFiles(ctx context.Context, note *models.Note, files []*models.NoteFile) (int64, error) {
	var noteID int64

	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := squirrel.Insert("notes").
			Columns("title", "description", "subject", "content_type", "university", "tags", "uploader_id").
			Values(note.Title, note.Description, note.Subject, note.ContentType, note.University, note.Tags, note.UploaderID).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&noteID); err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		for _, f := range files {
			sql, args, err := squirrel.Insert("note_files").
				Columns("note_id", "file_name", "file_path", "file_size", "mime_type").
				Values(noteID, f.FileName, f.FilePath, f.FileSize, f.MimeType).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("failed to insert note file: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error creating note with files")
		return 0, err
	}

	return noteID, nil
}

// GetFilesByNoteID lists the file rows attached to a note.
func (r *NoteRepository) GetFilesByNoteID(ctx context.Context, noteID int64) ([]*models.NoteFile, error) {
	sqlStr, args, err := squirrel.Select("id", "note_id", "file_name", "file_path", "file_size", "mime_type", "created_at").
		From("note_files").
		Where(squirrel.Eq{"note_id": noteID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := make([]*models.NoteFile, 0)
	for rows.Next() {
		var f models.NoteFile
		if err := rows.Scan(&f.ID, &f.NoteID, &f.FileName, &f.FilePath, &f.FileSize, &f.MimeType, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, &f)
	}
	return files, rows.Err()
}

// GetNoteOwner returns the uploader ID of a note.
func (r *NoteRepository) GetNoteOwner(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.DB.QueryRow(ctx, "SELECT uploader_id FROM notes WHERE id = $1", id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoteNotFound
		}
		return 0, err
	}
	return ownerID, nil
}

// UpdateNote updates the editable fields of a note.
func (r *NoteRepository) UpdateNote(ctx context.Context, note *models.Note) error {
	sql, args, err := squirrel.Update("notes").
		Set("title", note.Title).
		Set("description", note.Description).
		Set("subject", note.Subject).
		Set("content_type", note.ContentType).
		Set("university", note.University).
		Set("tags", note.Tags).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": note.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", note.ID).Msg("Error updating note")
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes a note and returns the stored file paths so the
// caller can clean up the files on disk. Child rows go with the note
// via ON DELETE CASCADE.
func (r *NoteRepository) DeleteNote(ctx context.Context, id int64) ([]string, error) {
	var paths []string

	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, "SELECT file_path FROM note_files WHERE note_id = $1", id)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var p string
			if err := rows.Scan(&p); err != nil {
				return err
			}
			paths = append(paths, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		cmdTag, err := tx.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// IncrementViews bumps the view counter of a note.
func (r *NoteRepository) IncrementViews(ctx context.Context, id int64) (int64, error) {
	var views int64
	err := r.DB.QueryRow(ctx,
		"UPDATE notes SET total_views = total_views + 1 WHERE id = $1 RETURNING total_views", id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoteNotFound
		}
		return 0, err
	}
	return views, nil
}

// IncrementDownloads bumps the download counter of a note.
func (r *NoteRepository) IncrementDownloads(ctx context.Context, id int64) (int64, error) {
	var downloads int64
	err := r.DB.QueryRow(ctx,
		"UPDATE notes SET total_downloads = total_downloads + 1 WHERE id = $1 RETURNING total_downloads", id,
	).Scan(&downloads)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNoteNotFound
		}
		return 0, err
	}
	return downloads, nil
}
