package analyzer

import (
	"reflect"
	"testing"
)

func TestGenerateQuestions_CapAndDedup(t *testing.T) {
	skills := ExtractSkills("DSA, OOP, Java, Python, SQL, MongoDB, REST, React, Node.js, Docker, AWS")
	got := GenerateQuestions(skills)
	if len(got) > 10 {
		t.Fatalf("got %d questions, cap is 10", len(got))
	}
	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q] {
			t.Errorf("duplicate question: %q", q)
		}
		seen[q] = true
	}
}

func TestGenerateQuestions_FallbackOnly(t *testing.T) {
	got := GenerateQuestions(ExtractSkills(""))
	// Fallback skills have no bank entries: 3 general + 2 HR.
	want := []string{
		"Walk me through a challenging project you worked on.",
		"How do you approach debugging a problem you've never seen before?",
		"Explain the software development lifecycle (SDLC).",
		"Tell me about yourself in 2 minutes.",
		"Why do you want to join this company?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback questions = %v, want %v", got, want)
	}
}

func TestGenerateQuestions_FirstTwoPerSkill(t *testing.T) {
	got := GenerateQuestions(ExtractedSkills{"Core CS": {"DSA"}})
	wantFirst := []string{
		"How would you find the kth largest element in an unsorted array?",
		"Explain the difference between BFS and DFS and when you would use each.",
	}
	if len(got) < 2 || got[0] != wantFirst[0] || got[1] != wantFirst[1] {
		t.Errorf("got %v, want first two DSA bank entries first", got)
	}
	// 2 DSA + 3 general + 2 HR.
	if len(got) != 7 {
		t.Errorf("got %d questions, want 7", len(got))
	}
}

func TestGenerateQuestions_SkillQuestionsPrecedeGeneral(t *testing.T) {
	skills := ExtractSkills("DSA, OOP, Java, SQL, REST API, and Docker")
	got := GenerateQuestions(skills)
	if len(got) != 10 {
		t.Fatalf("got %d questions, want exactly 10", len(got))
	}
	// Six matched skills contribute 2 each; the cap cuts before the
	// general/HR tail is reached.
	want := []string{
		questionBank["DSA"][0], questionBank["DSA"][1],
		questionBank["OOP"][0], questionBank["OOP"][1],
		questionBank["Java"][0], questionBank["Java"][1],
		questionBank["REST"][0], questionBank["REST"][1],
		questionBank["SQL"][0], questionBank["SQL"][1],
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}
