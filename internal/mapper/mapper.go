// Package mapper converts between GitHub events, domain models and transport DTOs.
package mapper

import (
	"fmt"

	"github.com/google/go-github/v62/github"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/message"
	"github.com/miscs-test/nextjs-learn-dashboard/internal/transport/http/dto"
)

// ReviewFromEvent builds the review row credited to the sender of a review event.
func ReviewFromEvent(ev *github.PullRequestReviewEvent) entities.Review {
	pr := ev.GetPullRequest()
	labels := message.Labels(pr)
	return entities.Review{
		PullRequestURL: pr.GetHTMLURL(),
		Title:          pr.GetTitle(),
		Labels:         labels,
		Score:          message.Score(labels),
		AuthorID:       pr.GetUser().GetLogin(),
		ReviewerID:     ev.GetSender().GetLogin(),
	}
}

// AvatarURL returns the GitHub avatar of a login.
func AvatarURL(login string) string {
	return fmt.Sprintf("https://avatars.githubusercontent.com/%s?size=80", login)
}

// ProfileURL returns the GitHub profile of a login.
func ProfileURL(login string) string {
	return "https://github.com/" + login
}

// ToDTOScore maps a reviewer score to transport model.
func ToDTOScore(s entities.ReviewerScore) dto.Score {
	return dto.Score{
		GithubID:   s.GithubID,
		Name:       s.DisplayName,
		InitScore:  s.BaseScore,
		ExtraScore: s.ExtraScore,
		TotalScore: s.TotalScore(),
		AvatarURL:  AvatarURL(s.GithubID),
		ProfileURL: ProfileURL(s.GithubID),
	}
}

// ToDTOScoreList maps a slice of reviewer scores to transport slice.
func ToDTOScoreList(list []entities.ReviewerScore) []dto.Score {
	res := make([]dto.Score, 0, len(list))
	for _, s := range list {
		res = append(res, ToDTOScore(s))
	}
	return res
}

// ToDTOReview maps a review to transport model.
func ToDTOReview(r entities.Review) dto.Review {
	labels := make([]string, len(r.Labels))
	copy(labels, r.Labels)
	return dto.Review{
		PRURL:      r.PullRequestURL,
		PRTitle:    r.Title,
		PRLabels:   labels,
		PRScore:    r.Score,
		PRAuthor:   r.AuthorID,
		PRReviewer: r.ReviewerID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ToDTOReviewPage maps a review page to transport model.
func ToDTOReviewPage(p entities.ReviewPage) dto.ReviewPage {
	reviews := make([]dto.Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, ToDTOReview(r))
	}
	return dto.ReviewPage{
		Reviews:    reviews,
		Query:      p.Query,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
