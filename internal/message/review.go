package message

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Review states that produce a message.
const (
	StateApproved         = "approved"
	StateChangesRequested = "changes_requested"
	StateCommented        = "commented"
)

// ActionSubmitted is the only pull_request_review action that is reported.
const ActionSubmitted Action = "submitted"

// PullRequestReview renders a summary for a submitted review. Any other action, and states
// such as dismissed, yield an empty string.
func PullRequestReview(ev *github.PullRequestReviewEvent) string {
	if Action(ev.GetAction()) != ActionSubmitted {
		return ""
	}

	review := ev.GetReview()
	state := strings.ToLower(review.GetState())
	switch state {
	case StateApproved, StateChangesRequested, StateCommented:
	default:
		return ""
	}

	pr := ev.GetPullRequest()
	title := fmt.Sprintf("%s: [#%d %s](%s) %s by %s",
		repoName(ev.GetRepo()), pr.GetNumber(), pr.GetTitle(), review.GetHTMLURL(), state, userName(ev.GetSender()))
	text := fmt.Sprintf("[%s](%s)\n%s", pr.GetTitle(), review.GetHTMLURL(), review.GetBody())
	return lines(title, text)
}
