// Package message turns GitHub pull request webhook events into chat summaries and scores.
package message

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Scoring labels.
const (
	LabelEpic  = "epic"
	LabelStory = "story"
	LabelTask  = "task"
	LabelNoCT  = "no-ct"
)

// Labels returns label names of a pull request in payload order.
func Labels(pr *github.PullRequest) []string {
	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}
	return labels
}

// Score maps a label set to review score. First match wins.
func Score(labels []string) float64 {
	switch {
	case slices.Contains(labels, LabelEpic):
		return 3.0
	case slices.Contains(labels, LabelStory):
		return 2.0
	case slices.Contains(labels, LabelTask) && slices.Contains(labels, LabelNoCT):
		return 0.5
	case slices.Contains(labels, LabelTask):
		return 1.0
	default:
		return 0.0
	}
}

// PullRequestScore is Score over the labels of pr.
func PullRequestScore(pr *github.PullRequest) float64 {
	return Score(Labels(pr))
}

// LabelsAndScore renders "labels: a,b, score: 2".
func LabelsAndScore(pr *github.PullRequest) string {
	labels := Labels(pr)
	return "labels: " + strings.Join(labels, ",") + ", score: " + FormatScore(Score(labels))
}

// FormatScore renders a score with the shortest exact decimal representation.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
