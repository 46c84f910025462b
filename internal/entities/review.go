// Package entities contains core business entities.
package entities

import "time"

// Review is a scored review of one pull request by one reviewer.
type Review struct {
	ID             string
	PullRequestURL string
	Title          string
	Labels         []string
	Score          float64
	AuthorID       string
	ReviewerID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReviewPage is one page of filtered review history.
type ReviewPage struct {
	Reviews    []Review
	Query      string
	Page       int
	PageSize   int
	TotalPages int
}
