// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ScoreInterface exposes reviewer score operations.
type ScoreInterface interface {
	FetchAllScoresSorted(ctx context.Context) ([]entities.ReviewerScore, error)
	GetReviewer(ctx context.Context, githubID string) (*entities.ReviewerScore, error)
	UpsertReviewer(ctx context.Context, reviewer entities.ReviewerScore) error
	SetExtraScore(ctx context.Context, githubID string, value float64) error
}

// ReviewInterface exposes review history operations.
type ReviewInterface interface {
	UpsertReview(ctx context.Context, review entities.Review) (*entities.Review, error)
	SumExtraScore(ctx context.Context, reviewerID string) (float64, error)
	FetchFilteredReviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error)
}
