package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Scoring weights. Breadth of detected categories carries the largest
// share (capped at 30) so a wide stack outweighs any single context
// field; each context signal is worth a flat 10.
const (
	scoreBase         = 35
	scoreMax          = 100
	categoryPoints    = 5
	categoryPointsCap = 30
	contextBonus      = 10

	// longJDBonusChars is the detail bonus threshold: JDs longer than
	// this earn the extra context points.
	longJDBonusChars = 800
)

// ShortJDWarnChars is the threshold below which a pasted JD is probably
// a fragment and the caller should warn before analyzing. Deliberately
// a separate constant from longJDBonusChars: nothing ties the warning
// to the score bonus.
const ShortJDWarnChars = 200

// ScoreInput carries everything the readiness formula reads.
type ScoreInput struct {
	Skills  ExtractedSkills
	Company string
	Role    string
	JDText  string
}

// CalcReadinessScore computes the immutable base score in [35,100]:
// 35 + min(5×categories, 30) + 10 per non-empty company/role + 10 for
// a JD over longJDBonusChars. Monotonic in every input, no randomness.
func CalcReadinessScore(in ScoreInput) int {
	score := scoreBase

	categories := 0
	for name := range in.Skills {
		if name != fallbackCategory {
			categories++
		}
	}
	pts := categories * categoryPoints
	if pts > categoryPointsCap {
		pts = categoryPointsCap
	}
	score += pts

	if strings.TrimSpace(in.Company) != "" {
		score += contextBonus
	}
	if strings.TrimSpace(in.Role) != "" {
		score += contextBonus
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.JDText)) > longJDBonusChars {
		score += contextBonus
	}

	if score > scoreMax {
		score = scoreMax
	}
	return score
}

// LiveScore adjusts a base score by the confidence map: +2 per skill
// marked "know", −2 per skill marked "practice", clamped to [0,100].
func LiveScore(baseScore int, confidence map[string]Confidence) int {
	score := baseScore
	for _, c := range confidence {
		switch c {
		case ConfidenceKnow:
			score += confidencePoints
		case ConfidencePractice:
			score -= confidencePoints
		}
	}
	if score < 0 {
		score = 0
	}
	if score > scoreMax {
		score = scoreMax
	}
	return score
}
