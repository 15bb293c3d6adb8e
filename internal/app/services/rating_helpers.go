package services

import (
	"context"
	"time"

	"github.com/studyconnect/backend/internal/app/models/dto"
	"github.com/studyconnect/backend/internal/app/repositories"
	"github.com/studyconnect/backend/internal/pkg/helpers"
)

// upsertRating applies the shared rate-an-entity flow: sanitize the
// review, write the rating, return the caller's rating together with
// the recomputed aggregate.
func upsertRating(ctx context.Context, repo *repositories.RatingRepository, target repositories.RatingTarget, entityID, userID int64, req *dto.RateRequest) (*dto.RatingSummary, error) {
	if err := sanitizeUserText(&req.Review); err != nil {
		return nil, err
	}

	var review *string
	if req.Review != "" {
		review = &req.Review
	}

	avg, count, err := repo.Upsert(ctx, target, entityID, userID, req.Rating, review)
	if err != nil {
		return nil, err
	}

	return &dto.RatingSummary{
		Rating: dto.RatingResponse{
			UserID:    userID,
			Rating:    req.Rating,
			Review:    req.Review,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		},
		AverageRating: avg,
		TotalRatings:  count,
	}, nil
}

// listRatings maps a page of rating rows into the API shape.
func listRatings(ctx context.Context, repo *repositories.RatingRepository, target repositories.RatingTarget, entityID int64, limit, offset int) (*dto.RatingListResponse, error) {
	ratings, total, err := repo.List(ctx, target, entityID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &dto.RatingListResponse{
		Items:    make([]dto.RatingResponse, 0, len(ratings)),
		ListMeta: dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	}
	for _, r := range ratings {
		resp.Items = append(resp.Items, dto.RatingResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.RaterName,
			Rating:    r.Rating,
			Review:    helpers.StringValue(r.Review),
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
			UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
