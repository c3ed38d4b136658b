package analyzer

import (
	"fmt"
	"strings"
)

// Plain-text renderings for copy/export. Stable, newline-delimited,
// reproducible from the record alone — never re-parsed.

// PlanText renders the study plan, one block per day range.
func PlanText(plan []PlanBlock) string {
	blocks := make([]string, 0, len(plan))
	for _, b := range plan {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s — %s", b.Days, b.Focus)
		for _, t := range b.Tasks {
			sb.WriteString("\n  • ")
			sb.WriteString(t)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

// ChecklistText renders the round-wise checklist with empty tick boxes.
func ChecklistText(rounds []ChecklistRound) string {
	blocks := make([]string, 0, len(rounds))
	for _, r := range rounds {
		var sb strings.Builder
		sb.WriteString(r.Round)
		for _, it := range r.Items {
			sb.WriteString("\n  □ ")
			sb.WriteString(it)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

// QuestionsText renders the question list, numbered from 1.
func QuestionsText(questions []string) string {
	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// ReportText renders the full downloadable report for one analysis.
func ReportText(a *Analysis) string {
	var skills []string
	for _, cat := range CategoryOrder() {
		if list := a.ExtractedSkills[cat]; len(list) > 0 {
			skills = append(skills, fmt.Sprintf("%s: %s", cat, strings.Join(list, ", ")))
		}
	}

	var conf []string
	for _, s := range FlattenSkills(a.ExtractedSkills) {
		if a.SkillConfidenceMap[s] == ConfidenceKnow {
			conf = append(conf, fmt.Sprintf("  ✓ %s — I know this", s))
		} else {
			conf = append(conf, fmt.Sprintf("  ○ %s — Need practice", s))
		}
	}

	sections := []string{
		"JD Analysis Report",
		"Company: " + orDash(a.Company),
		"Role: " + orDash(a.Role),
		"Date: " + a.CreatedAt,
		fmt.Sprintf("Readiness Score: %d/100", a.FinalScore),
		"\n── SKILLS DETECTED ──\n" + strings.Join(skills, "\n"),
		"\n── SKILL CONFIDENCE ──\n" + strings.Join(conf, "\n"),
		"\n── ROUND-WISE CHECKLIST ──\n" + ChecklistText(a.Checklist),
		"\n── 7-DAY STUDY PLAN ──\n" + PlanText(a.Plan),
		"\n── INTERVIEW QUESTIONS ──\n" + QuestionsText(a.Questions),
	}
	return strings.Join(sections, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
