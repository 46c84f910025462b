package message

import (
	"fmt"

	"github.com/google/go-github/v62/github"
)

func userName(u *github.User) string {
	return fmt.Sprintf("[%s](%s)", u.GetLogin(), u.GetHTMLURL())
}

func teamName(t *github.Team) string {
	return fmt.Sprintf("[%s](%s)", t.GetName(), t.GetHTMLURL())
}

func repoName(r *github.Repository) string {
	return fmt.Sprintf("[%s](%s)", r.GetName(), r.GetHTMLURL())
}

func pullRequestName(pr *github.PullRequest) string {
	return fmt.Sprintf("[#%d %s](%s)", pr.GetNumber(), pr.GetTitle(), pr.GetHTMLURL())
}
