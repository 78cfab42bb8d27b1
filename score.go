package neatcommit

import "github.com/zirafica98/neatcommit/issue"

// ScoringVersion identifies the weight table below. It is reported next to
// the corpus version because both change the score of the same snippet.
const ScoringVersion = "1"

// MaxScore is the score of a supported snippet without issues.
const MaxScore = 100

// severityWeights is the number of points each issue removes from the score.
var severityWeights = [...]int{
	issue.Low:      1,
	issue.Medium:   2,
	issue.High:     5,
	issue.Critical: 10,
}

// SeverityWeights returns a copy of the weight table used by Score.
func SeverityWeights() map[issue.Severity]int {
	weights := make(map[issue.Severity]int, len(severityWeights))
	for s, w := range severityWeights {
		weights[issue.Severity(s)] = w
	}
	return weights
}

func weightOf(s issue.Severity) int {
	if s < 0 || int(s) >= len(severityWeights) {
		return 0
	}
	return severityWeights[s]
}

// Score computes the 0-100 health score for the given severity counts.
func Score(counts issue.Counts) int {
	score := MaxScore
	for _, s := range issue.Severities {
		score -= weightOf(s) * counts.Of(s)
		if score <= 0 {
			return 0
		}
	}
	return score
}
