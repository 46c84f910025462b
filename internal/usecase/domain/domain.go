// Package domain contains application services orchestrating review scoring.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/repository"

	"go.uber.org/zap"
)

// Notifier delivers chat messages.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	notifier Notifier
	timeout  time.Duration
	opts     message.Options
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier Notifier,
	timeout time.Duration,
	opts message.Options,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log.Named("usecase"),
		repo:     repo,
		notifier: notifier,
		timeout:  timeout,
		opts:     opts,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, entities.ErrStorage, err)
}
