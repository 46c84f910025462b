// Package dto holds JSON shapes of the HTTP API.
package dto

import "time"

// EventResponse is the webhook reply.
type EventResponse struct {
	Msg string `json:"msg"`
}

// Score is one leaderboard entry.
type Score struct {
	GithubID   string  `json:"github_id"`
	Name       string  `json:"name_in_company"`
	InitScore  float64 `json:"init_score"`
	ExtraScore float64 `json:"extra_score"`
	TotalScore float64 `json:"total_score"`
	AvatarURL  string  `json:"avatar_url"`
	ProfileURL string  `json:"profile_url"`
}

// Review is one row of review history.
type Review struct {
	PRURL      string    `json:"pr_url"`
	PRTitle    string    `json:"pr_title"`
	PRLabels   []string  `json:"pr_labels"`
	PRScore    float64   `json:"pr_score"`
	PRAuthor   string    `json:"pr_author"`
	PRReviewer string    `json:"pr_reviewer"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewPage is a page of review history.
type ReviewPage struct {
	Reviews    []Review `json:"reviews"`
	Query      string   `json:"query"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// ErrorResponse is the error envelope of JSON routes.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine code and message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
