package message

import (
	"strings"

	"github.com/miscs-test/nextjs-learn-dashboard/internal/entities"
)

// Leaderboard renders "current scores: name(total) | ..." in the given order.
func Leaderboard(scores []entities.ReviewerScore) string {
	if len(scores) == 0 {
		return ""
	}
	parts := make([]string, 0, len(scores))
	for _, s := range scores {
		parts = append(parts, s.DisplayName+"("+FormatScore(s.TotalScore())+")")
	}
	return "current scores: " + strings.Join(parts, " | ")
}

// ScoreChange renders "<name> score: <before> --> <after>" using total scores.
func ScoreChange(r entities.ReviewerScore, beforeExtra, afterExtra float64) string {
	return r.DisplayName + " score: " + FormatScore(r.BaseScore+beforeExtra) + " --> " +
		FormatScore(r.BaseScore+afterExtra)
}
