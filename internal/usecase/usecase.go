package usecase

import (
	"context"
	"time"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/repository"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	WebhookUsecaseInterface
	DashboardUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier domain.Notifier,
	timeout time.Duration,
	opts message.Options,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, notifier, timeout, opts)
}
