package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/pkg/logger"
)

// trendingWindowDays bounds the trending computation to recent activity.
const trendingWindowDays = 7

// AnalyticsRepository computes aggregate rankings over the notes corpus.
type AnalyticsRepository struct {
	DB *pgxpool.Pool
}

// NewAnalyticsRepository creates a new instance of AnalyticsRepository.
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// RankedNote carries a note plus its trend score.
type RankedNote struct {
	Note  *NoteDetails
	Score int64
}

// TopNotes returns the notes ranked by the given counter column.
// The column name is validated against a whitelist before being
// interpolated.
func (r *AnalyticsRepository) TopNotes(ctx context.Context, metric string, limit int) ([]*NoteDetails, error) {
	column, ok := map[string]string{
		"views":     "n.total_views",
		"downloads": "n.total_downloads",
		"rating":    "n.average_rating",
		"recent":    "n.created_at",
	}[metric]
	if !ok {
		return nil, fmt.Errorf("unknown analytics metric %q", metric)
	}

	b := selectNoteDetailsQuery()
	if metric == "rating" {
		// A couple of five-star votes should not outrank a well
		// established note.
		b = b.Where("n.total_ratings >= 3")
	}

	sqlStr, args, err := b.
		OrderBy(column + " DESC, n.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("metric", metric).Msg("Error executing top notes query")
		return nil, err
	}
	defer rows.Close()

	notes := make([]*NoteDetails, 0)
	for rows.Next() {
		n, err := scanNoteDetails(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// TrendingNotes ranks notes created inside the trending window by
// their combined view and download counts.
func (r *AnalyticsRepository) TrendingNotes(ctx context.Context, limit int) ([]*RankedNote, error) {
	sqlStr, args, err := selectNoteDetailsQuery().
		Column("(n.total_views + n.total_downloads) AS trend_score").
		Where(fmt.Sprintf("n.created_at > now() - interval '%d days'", trendingWindowDays)).
		OrderBy("trend_score DESC, n.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing trending notes query")
		return nil, err
	}
	defer rows.Close()

	ranked := make([]*RankedNote, 0)
	for rows.Next() {
		var n NoteDetails
		var score int64
		err := rows.Scan(
			&n.ID, &n.Title, &n.Description, &n.Subject, &n.ContentType,
			&n.University, &n.Tags, &n.UploaderID, &n.TotalViews,
			&n.TotalDownloads, &n.AverageRating, &n.TotalRatings,
			&n.CreatedAt, &n.UpdatedAt, &n.UploaderName, &score,
		)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, &RankedNote{Note: &n, Score: score})
	}
	return ranked, rows.Err()
}

// SubjectCounts aggregates note counts per subject, most populated first.
func (r *AnalyticsRepository) SubjectCounts(ctx context.Context) ([]dto.SubjectCount, error) {
	rows, err := r.DB.Query(ctx,
		"SELECT subject, count(*) FROM notes GROUP BY subject ORDER BY count(*) DESC, subject")
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subject aggregation query")
		return nil, err
	}
	defer rows.Close()

	counts := make([]dto.SubjectCount, 0)
	for rows.Next() {
		var sc dto.SubjectCount
		if err := rows.Scan(&sc.Subject, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}
