package message

import (
	"strings"

	"github.com/google/go-github/v62/github"
)

// Action is the action field of a pull_request webhook event.
type Action string

// Pull request actions with dedicated wording.
const (
	ActionAssigned             Action = "assigned"
	ActionUnassigned           Action = "unassigned"
	ActionClosed               Action = "closed"
	ActionOpened               Action = "opened"
	ActionReopened             Action = "reopened"
	ActionLabeled              Action = "labeled"
	ActionReviewRequested      Action = "review_requested"
	ActionReviewRequestRemoved Action = "review_request_removed"
)

// Options tunes which pull request actions produce a message.
type Options struct {
	// ReviewRequests enables review_requested and review_request_removed messages.
	ReviewRequests bool
}

// PullRequest renders a summary for a pull_request event. An empty result means nothing
// should be sent.
func PullRequest(ev *github.PullRequestEvent, opts Options) string {
	switch Action(ev.GetAction()) {
	case ActionAssigned:
		return assigned(ev)
	case ActionUnassigned:
		return unassigned(ev)
	case ActionClosed:
		return closed(ev)
	case ActionOpened:
		return opened(ev)
	case ActionReopened:
		return reopened(ev)
	case ActionLabeled:
		return labeled(ev)
	case ActionReviewRequested:
		if !opts.ReviewRequests {
			return ""
		}
		return reviewRequested(ev)
	case ActionReviewRequestRemoved:
		if !opts.ReviewRequests {
			return ""
		}
		return reviewRequestRemoved(ev)
	default:
		return fallback(ev)
	}
}

// WantsLeaderboard reports whether the event should carry the current scores line.
func WantsLeaderboard(ev *github.PullRequestEvent) bool {
	if ev.GetPullRequest().GetDraft() {
		return false
	}
	switch Action(ev.GetAction()) {
	case ActionOpened, ActionReopened:
		return true
	default:
		return false
	}
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func assigned(ev *github.PullRequestEvent) string {
	title := repoName(ev.GetRepo()) + ": pull request assigned to " + userName(ev.GetAssignee()) +
		" by " + userName(ev.GetSender())
	return lines(title, pullRequestName(ev.GetPullRequest()))
}

func unassigned(ev *github.PullRequestEvent) string {
	title := repoName(ev.GetRepo()) + ": pull request unassigned from " + userName(ev.GetAssignee()) +
		" by " + userName(ev.GetSender())
	return lines(title, pullRequestName(ev.GetPullRequest()))
}

func closed(ev *github.PullRequestEvent) string {
	verb := "closed"
	if ev.GetPullRequest().GetMerged() {
		verb = "merged"
	}
	title := repoName(ev.GetRepo()) + ": pull request " + verb + " by " + userName(ev.GetSender())
	return lines(title, pullRequestName(ev.GetPullRequest()))
}

func opened(ev *github.PullRequestEvent) string {
	pr := ev.GetPullRequest()
	title := repoName(ev.GetRepo()) + ": pull request " + pullRequestName(pr) + " opened by " +
		userName(ev.GetSender())
	return lines(title, LabelsAndScore(pr))
}

func reopened(ev *github.PullRequestEvent) string {
	pr := ev.GetPullRequest()
	title := repoName(ev.GetRepo()) + ": pull request reopened by " + userName(ev.GetSender())
	return lines(title, pullRequestName(pr), LabelsAndScore(pr))
}

func labeled(ev *github.PullRequestEvent) string {
	pr := ev.GetPullRequest()
	title := repoName(ev.GetRepo()) + ": pull request labeled by " + userName(ev.GetSender())
	return lines(title, pullRequestName(pr), LabelsAndScore(pr))
}

func requestedReviewer(ev *github.PullRequestEvent) string {
	if ev.RequestedReviewer != nil {
		return userName(ev.RequestedReviewer)
	}
	return teamName(ev.GetRequestedTeam())
}

func reviewRequested(ev *github.PullRequestEvent) string {
	title := repoName(ev.GetRepo()) + ": " + userName(ev.GetSender()) + " requested a review from " +
		requestedReviewer(ev)
	return lines(title, pullRequestName(ev.GetPullRequest()))
}

func reviewRequestRemoved(ev *github.PullRequestEvent) string {
	title := repoName(ev.GetRepo()) + ": " + userName(ev.GetSender()) + " removed review request from " +
		requestedReviewer(ev)
	return lines(title, pullRequestName(ev.GetPullRequest()))
}

func fallback(ev *github.PullRequestEvent) string {
	title := repoName(ev.GetRepo()) + ": pull request " + ev.GetAction() + " by " + userName(ev.GetSender())
	return lines(title, pullRequestName(ev.GetPullRequest()))
}
