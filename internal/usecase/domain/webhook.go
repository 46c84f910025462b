package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
)

// GitHub event types (X-GitHub-Event header values).
const (
	EventPullRequest       = "pull_request"
	EventPullRequestReview = "pull_request_review"
	EventPing              = "ping"
)

// HandleWebhook turns a GitHub webhook delivery into a chat message, updating review scores
// along the way, and relays the outcome to the chat bot. Unknown event types produce an
// empty message and no error.
func (u *Usecase) HandleWebhook(ctx context.Context, eventType, deliveryID string, payload []byte) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	msg, err := u.handleEvent(ctx, eventType, payload)
	if err != nil {
		u.log.Errorw("webhook failed", "event", eventType, "delivery", deliveryID, "error", err)
		u.notify("Webhook error: " + err.Error())
		return "", err
	}

	u.log.Infow("webhook handled", "event", eventType, "delivery", deliveryID, "notified", msg != "")
	u.notify(msg)
	return msg, nil
}

func (u *Usecase) handleEvent(ctx context.Context, eventType string, payload []byte) (string, error) {
	switch eventType {
	case EventPullRequest:
		ev, err := parsePullRequestEvent(payload)
		if err != nil {
			return "", err
		}
		return u.pullRequestMessage(ctx, ev)
	case EventPullRequestReview:
		ev, err := parsePullRequestReviewEvent(payload)
		if err != nil {
			return "", err
		}
		return u.pullRequestReviewMessage(ctx, ev)
	case EventPing:
		return "", nil
	default:
		u.log.Debugw("ignoring webhook event", "event", eventType)
		return "", nil
	}
}

func (u *Usecase) pullRequestMessage(ctx context.Context, ev *github.PullRequestEvent) (string, error) {
	msg := message.PullRequest(ev, u.opts)
	if msg == "" || !message.WantsLeaderboard(ev) {
		return msg, nil
	}

	board, err := u.leaderboard(ctx)
	if err != nil {
		return "", err
	}
	return joinLines(msg, board), nil
}

func (u *Usecase) pullRequestReviewMessage(ctx context.Context, ev *github.PullRequestReviewEvent) (string, error) {
	msg := message.PullRequestReview(ev)
	if msg == "" {
		return "", nil
	}

	change, err := u.SaveReview(ctx, ev)
	if err != nil {
		return "", err
	}
	if change == "" {
		return msg, nil
	}

	board, err := u.leaderboard(ctx)
	if err != nil {
		return "", err
	}
	return joinLines(msg, message.LabelsAndScore(ev.GetPullRequest()), change, board), nil
}

func (u *Usecase) leaderboard(ctx context.Context) (string, error) {
	scores, err := u.repo.FetchAllScoresSorted(ctx)
	if err != nil {
		return "", storageError("fetch scores", err)
	}
	return message.Leaderboard(scores), nil
}

// notify is fire-and-forget: failures are logged and never reach the caller. It runs under
// the application context so an aborted request does not cut the message short.
func (u *Usecase) notify(text string) {
	if text == "" {
		return
	}
	if err := u.notifier.Send(u.ctx, text); err != nil {
		u.log.Warnw("chat notification failed", "error", err)
	}
}

func parsePullRequestEvent(payload []byte) (*github.PullRequestEvent, error) {
	raw, err := github.ParseWebHook(EventPullRequest, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrInvalidPayload, EventPullRequest, err)
	}
	ev, ok := raw.(*github.PullRequestEvent)
	if !ok || ev.PullRequest == nil {
		return nil, fmt.Errorf("%w: %s: missing pull_request", entities.ErrInvalidPayload, EventPullRequest)
	}
	return ev, nil
}

func parsePullRequestReviewEvent(payload []byte) (*github.PullRequestReviewEvent, error) {
	raw, err := github.ParseWebHook(EventPullRequestReview, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrInvalidPayload, EventPullRequestReview, err)
	}
	ev, ok := raw.(*github.PullRequestReviewEvent)
	if !ok || ev.PullRequest == nil || ev.Review == nil {
		return nil, fmt.Errorf("%w: %s: missing pull_request or review", entities.ErrInvalidPayload, EventPullRequestReview)
	}
	return ev, nil
}

func joinLines(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}
