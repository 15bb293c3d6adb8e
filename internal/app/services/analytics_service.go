package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/cache"
)

// analyticsCacheTTL keeps analytics answers fresh enough while
// shielding the aggregation queries from per-request load.
const analyticsCacheTTL = 5 * time.Minute

// analyticsLimit caps every ranked analytics list.
const analyticsLimit = 10

// AnalyticsService serves aggregate rankings over the notes corpus,
// cached in Redis when a cache is configured.
type AnalyticsService interface {
	Trending(ctx context.Context) (*dto.TrendingResponse, error)
	TopNotes(ctx context.Context) (*dto.AnalyticsNotesResponse, error)
	RecentNotes(ctx context.Context) (*dto.AnalyticsNotesResponse, error)
	Subjects(ctx context.Context) (*dto.SubjectsResponse, error)
}

type analyticsService struct {
	repos *repositories.Repositories
	cache *cache.Cache
}

// NewAnalyticsService creates a new instance of AnalyticsService. The
// cache may be nil, in which case every call hits the database.
func NewAnalyticsService(repos *repositories.Repositories, c *cache.Cache) AnalyticsService {
	return &analyticsService{repos: repos, cache: c}
}

func (s *analyticsService) Trending(ctx context.Context) (*dto.TrendingResponse, error) {
	var cached dto.TrendingResponse
	if s.cache.GetJSON(ctx, "analytics:trending", &cached) {
		return &cached, nil
	}

	ranked, err := s.repos.Analytics.TrendingNotes(ctx, analyticsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.TrendingResponse{Items: make([]dto.TrendingNote, 0, len(ranked))}
	for _, r := range ranked {
		resp.Items = append(resp.Items, dto.TrendingNote{
			NoteResponse: mapNoteToResponse(r.Note),
			TrendScore:   r.Score,
		})
	}

	s.storeInCache(ctx, "analytics:trending", resp)
	return resp, nil
}

func (s *analyticsService) TopNotes(ctx context.Context) (*dto.AnalyticsNotesResponse, error) {
	return s.rankedNotes(ctx, "analytics:top-notes", "rating")
}

func (s *analyticsService) RecentNotes(ctx context.Context) (*dto.AnalyticsNotesResponse, error) {
	return s.rankedNotes(ctx, "analytics:recent", "recent")
}

func (s *analyticsService) rankedNotes(ctx context.Context, key, metric string) (*dto.AnalyticsNotesResponse, error) {
	var cached dto.AnalyticsNotesResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	notes, err := s.repos.Analytics.TopNotes(ctx, metric, analyticsLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnalyticsNotesResponse{Items: make([]dto.NoteResponse, 0, len(notes))}
	for _, n := range notes {
		resp.Items = append(resp.Items, mapNoteToResponse(n))
	}

	s.storeInCache(ctx, key, resp)
	return resp, nil
}

func (s *analyticsService) Subjects(ctx context.Context) (*dto.SubjectsResponse, error) {
	var cached dto.SubjectsResponse
	if s.cache.GetJSON(ctx, "analytics:subjects", &cached) {
		return &cached, nil
	}

	counts, err := s.repos.Analytics.SubjectCounts(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubjectsResponse{Items: counts}
	s.storeInCache(ctx, "analytics:subjects", resp)
	return resp, nil
}

// storeInCache writes through to Redis; a failed write only costs the
// next caller a database query.
func (s *analyticsService) storeInCache(ctx context.Context, key string, value any) {
	s.cache.SetJSON(ctx, key, value, analyticsCacheTTL)
}
