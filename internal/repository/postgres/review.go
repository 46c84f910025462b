package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	upsertReviewQuery = `
INSERT INTO reviews (pr_url, pr_title, pr_labels, pr_score, pr_reviewer, pr_author)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (pr_url, pr_reviewer)
DO UPDATE SET pr_title = EXCLUDED.pr_title, pr_labels = EXCLUDED.pr_labels, pr_score = EXCLUDED.pr_score, updated_at = NOW()
RETURNING id::text, created_at, updated_at`
	sumExtraScoreQuery = `SELECT COALESCE(SUM(pr_score), 0) FROM reviews WHERE pr_reviewer = $1`
	reviewsFilter      = `
WHERE pr_author ILIKE $1 ESCAPE '\' OR pr_reviewer ILIKE $1 ESCAPE '\' OR pr_title ILIKE $1 ESCAPE '\'`
	countReviewsQuery  = `SELECT COUNT(*) FROM reviews` + reviewsFilter
	filterReviewsQuery = `
SELECT id::text, pr_url, pr_title, pr_labels, pr_score, pr_author, pr_reviewer, created_at, updated_at
FROM reviews` + reviewsFilter + `
ORDER BY updated_at DESC, id
LIMIT $2 OFFSET $3`
)

const labelSeparator = ","

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UpsertReview inserts a review or updates the existing (pr_url, reviewer) row.
func (p *Postgres) UpsertReview(ctx context.Context, review entities.Review) (*entities.Review, error) {
	err := p.db.QueryRow(ctx, upsertReviewQuery,
		review.PullRequestURL,
		review.Title,
		strings.Join(review.Labels, labelSeparator),
		review.Score,
		review.ReviewerID,
		review.AuthorID,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			p.log.Errorw("review constraint violation",
				"error", err, "code", pgErr.Code, "constraint", pgErr.ConstraintName, "pr_url", review.PullRequestURL)
			return nil, fmt.Errorf("upsert review: constraint %s: %w", pgErr.ConstraintName, err)
		}
		p.log.Errorw("failed to upsert review", "error", err, "pr_url", review.PullRequestURL)
		return nil, fmt.Errorf("upsert review: %w", err)
	}

	p.log.Infow("review saved", "pr_url", review.PullRequestURL, "reviewer", review.ReviewerID, "score", review.Score)
	return &review, nil
}

// SumExtraScore recomputes the sum of review scores credited to a reviewer.
func (p *Postgres) SumExtraScore(ctx context.Context, reviewerID string) (float64, error) {
	var sum float64
	if err := p.db.QueryRow(ctx, sumExtraScoreQuery, reviewerID).Scan(&sum); err != nil {
		p.log.Errorw("failed to sum extra score", "error", err, "reviewer", reviewerID)
		return 0, fmt.Errorf("sum extra score: %w", err)
	}
	return sum, nil
}

// FetchFilteredReviews returns one page of reviews whose author, reviewer or title contains
// query, most recently updated first. The count and the page are read in separate round trips.
func (p *Postgres) FetchFilteredReviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error) {
	res := entities.ReviewPage{Query: query, Page: page, PageSize: pageSize, Reviews: make([]entities.Review, 0)}
	if page < 1 || pageSize < 1 {
		return res, fmt.Errorf("%w: page and page size must be positive", entities.ErrInvalidArgument)
	}

	pattern := "%" + likeEscaper.Replace(query) + "%"

	var total int
	if err := p.db.QueryRow(ctx, countReviewsQuery, pattern).Scan(&total); err != nil {
		p.log.Errorw("failed to count reviews", "error", err, "query", query)
		return res, fmt.Errorf("count reviews: %w", err)
	}
	res.TotalPages = (total + pageSize - 1) / pageSize
	if total == 0 {
		return res, nil
	}

	rows, err := p.db.Query(ctx, filterReviewsQuery, pattern, pageSize, (page-1)*pageSize)
	if err != nil {
		p.log.Errorw("failed to fetch reviews", "error", err, "query", query)
		return res, fmt.Errorf("fetch reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r      entities.Review
			labels string
		)
		if err := rows.Scan(&r.ID, &r.PullRequestURL, &r.Title, &labels, &r.Score,
			&r.AuthorID, &r.ReviewerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			p.log.Errorw("failed to scan review", "error", err)
			return res, fmt.Errorf("scan review: %w", err)
		}
		r.Labels = splitLabels(labels)
		res.Reviews = append(res.Reviews, r)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate reviews", "error", err)
		return res, fmt.Errorf("iterate reviews: %w", err)
	}

	return res, nil
}

func splitLabels(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, labelSeparator)
}
