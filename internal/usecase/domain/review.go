package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v62/github"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/mapper"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
)

// SaveReview credits a submitted review to its reviewer and re-derives the reviewer's extra
// score. It returns a "score changed" line, or an empty string when nothing changed or the
// review does not qualify (merged PR, self review, unregistered reviewer).
//
// The steps are separate round trips without a transaction: two concurrent reviews by the
// same reviewer may race on the final extra score write, last writer wins.
func (u *Usecase) SaveReview(ctx context.Context, ev *github.PullRequestReviewEvent) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	pr := ev.GetPullRequest()
	if pr == nil {
		return "", fmt.Errorf("%w: missing pull_request", entities.ErrInvalidPayload)
	}
	if pr.MergedAt != nil {
		u.log.Debugw("skip review of merged pull request", "pr_url", pr.GetHTMLURL())
		return "", nil
	}

	reviewerID := ev.GetSender().GetLogin()
	if reviewerID == pr.GetUser().GetLogin() {
		u.log.Debugw("skip self review", "pr_url", pr.GetHTMLURL(), "reviewer", reviewerID)
		return "", nil
	}

	reviewer, err := u.repo.GetReviewer(ctx, reviewerID)
	if errors.Is(err, entities.ErrReviewerNotFound) {
		u.log.Debugw("skip unregistered reviewer", "reviewer", reviewerID)
		return "", nil
	}
	if err != nil {
		return "", storageError("find reviewer", err)
	}
	before := reviewer.ExtraScore

	if _, err := u.repo.UpsertReview(ctx, mapper.ReviewFromEvent(ev)); err != nil {
		return "", storageError("save review", err)
	}

	after, err := u.repo.SumExtraScore(ctx, reviewerID)
	if err != nil {
		return "", storageError("sum extra score", err)
	}
	if after == before {
		return "", nil
	}

	if err := u.repo.SetExtraScore(ctx, reviewerID, after); err != nil {
		return "", storageError("update score", err)
	}

	u.log.Infow("review score changed", "reviewer", reviewerID, "before", before, "after", after)
	return message.ScoreChange(*reviewer, before, after), nil
}
