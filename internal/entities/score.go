// Package entities contains core business entities.
package entities

// ReviewerScore is a company member eligible to accrue review score.
type ReviewerScore struct {
	GithubID    string
	DisplayName string
	BaseScore   float64
	// ExtraScore is derived from the reviewer's reviews and overwritten on every recompute.
	ExtraScore float64
}

// TotalScore returns base plus extra score.
func (s ReviewerScore) TotalScore() float64 {
	return s.BaseScore + s.ExtraScore
}
