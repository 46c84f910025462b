package handlers_fiber

import (
	"context"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/mock"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/usecase"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*usecaseMock)(nil)

func (m *usecaseMock) HandleWebhook(ctx context.Context, eventType, deliveryID string, payload []byte) (string, error) {
	args := m.Called(ctx, eventType, deliveryID, payload)
	return args.String(0), args.Error(1)
}

func (m *usecaseMock) SaveReview(ctx context.Context, ev *github.PullRequestReviewEvent) (string, error) {
	args := m.Called(ctx, ev)
	return args.String(0), args.Error(1)
}

func (m *usecaseMock) Rank(ctx context.Context) ([]entities.ReviewerScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ReviewerScore), args.Error(1)
}

func (m *usecaseMock) Reviews(ctx context.Context, query string, page, pageSize int) (entities.ReviewPage, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).(entities.ReviewPage), args.Error(1)
}
