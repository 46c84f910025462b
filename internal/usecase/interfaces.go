package usecase

import (
	"context"

	"github.com/google/go-github/v62/github"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
)

// WebhookUsecaseInterface abstracts GitHub webhook processing for delivery layer.
type WebhookUsecaseInterface interface {
	HandleWebhook(ctx context.Context, eventType, deliveryID string, payload []byte) (string, error)
	SaveReview(ctx context.Context, ev *github.PullRequestReviewEvent) (string, error)
}

// DashboardUsecaseInterface abstracts read-only dashboard queries.
type DashboardUsecaseInterface interface {
	Rank(ctx context.Context) ([]entities.ReviewerScore, error)
	Reviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error)
}
