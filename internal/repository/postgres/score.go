package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectScoresSortedQuery = `
SELECT github_id, name_in_company, init_score, extra_score
FROM scores
ORDER BY init_score + extra_score ASC, github_id ASC`
	selectReviewerQuery = `SELECT github_id, name_in_company, init_score, extra_score FROM scores WHERE github_id = $1`
	upsertReviewerQuery = `
INSERT INTO scores (github_id, name_in_company, init_score, extra_score)
VALUES ($1, $2, $3, 0)
ON CONFLICT (github_id) DO UPDATE SET name_in_company = EXCLUDED.name_in_company, init_score = EXCLUDED.init_score`
	updateExtraScoreQuery = `UPDATE scores SET extra_score = $2 WHERE github_id = $1`
)

// FetchAllScoresSorted returns every reviewer ordered by ascending total score.
func (p *Postgres) FetchAllScoresSorted(ctx context.Context) ([]entities.ReviewerScore, error) {
	rows, err := p.db.Query(ctx, selectScoresSortedQuery)
	if err != nil {
		p.log.Errorw("failed to fetch scores", "error", err)
		return nil, fmt.Errorf("fetch scores: %w", err)
	}
	defer rows.Close()

	scores := make([]entities.ReviewerScore, 0)
	for rows.Next() {
		var s entities.ReviewerScore
		if err := rows.Scan(&s.GithubID, &s.DisplayName, &s.BaseScore, &s.ExtraScore); err != nil {
			p.log.Errorw("failed to scan score", "error", err)
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate scores", "error", err)
		return nil, fmt.Errorf("iterate scores: %w", err)
	}

	return scores, nil
}

// GetReviewer returns the score row of a github login or entities.ErrReviewerNotFound.
func (p *Postgres) GetReviewer(ctx context.Context, githubID string) (*entities.ReviewerScore, error) {
	var s entities.ReviewerScore
	err := p.db.QueryRow(ctx, selectReviewerQuery, githubID).
		Scan(&s.GithubID, &s.DisplayName, &s.BaseScore, &s.ExtraScore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrReviewerNotFound
		}
		p.log.Errorw("failed to fetch reviewer", "error", err, "github_id", githubID)
		return nil, fmt.Errorf("get reviewer: %w", err)
	}
	return &s, nil
}

// UpsertReviewer registers a reviewer or updates its name and base score.
// The extra score of an existing row is left untouched.
func (p *Postgres) UpsertReviewer(ctx context.Context, reviewer entities.ReviewerScore) error {
	if _, err := p.db.Exec(ctx, upsertReviewerQuery, reviewer.GithubID, reviewer.DisplayName, reviewer.BaseScore); err != nil {
		p.log.Errorw("failed to upsert reviewer", "error", err, "github_id", reviewer.GithubID)
		return fmt.Errorf("upsert reviewer: %w", err)
	}
	p.log.Infow("reviewer registered", "github_id", reviewer.GithubID, "base_score", reviewer.BaseScore)
	return nil
}

// SetExtraScore overwrites the derived extra score of a reviewer.
func (p *Postgres) SetExtraScore(ctx context.Context, githubID string, value float64) error {
	tag, err := p.db.Exec(ctx, updateExtraScoreQuery, githubID, value)
	if err != nil {
		p.log.Errorw("failed to update score", "error", err, "github_id", githubID)
		return fmt.Errorf("update score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrReviewerNotFound
	}
	p.log.Infow("extra score updated", "github_id", githubID, "extra_score", value)
	return nil
}
