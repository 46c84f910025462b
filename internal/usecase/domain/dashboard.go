package domain

import (
	"context"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Rank returns reviewers ordered by ascending total score.
func (u *Usecase) Rank(ctx context.Context) ([]entities.ReviewerScore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	scores, err := u.repo.FetchAllScoresSorted(ctx)
	if err != nil {
		return nil, storageError("fetch scores", err)
	}
	return scores, nil
}

// Reviews returns one page of review history filtered by query.
func (u *Usecase) Reviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	res, err := u.repo.FetchFilteredReviews(ctx, query, page, pageSize)
	if err != nil {
		return entities.ReviewPage{}, storageError("fetch reviews", err)
	}
	return res, nil
}
