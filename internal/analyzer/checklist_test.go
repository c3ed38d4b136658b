package analyzer

import (
	"strings"
	"testing"
)

func TestGenerateChecklist_FourRounds(t *testing.T) {
	got := GenerateChecklist(ExtractSkills(""))
	if len(got) != 4 {
		t.Fatalf("got %d rounds, want 4", len(got))
	}
	wantRounds := []string{
		"Round 1 — Aptitude & Basics",
		"Round 2 — DSA & Core CS",
		"Round 3 — Tech Interview (Projects + Stack)",
		"Round 4 — HR & Managerial",
	}
	for i, r := range got {
		if r.Round != wantRounds[i] {
			t.Errorf("round %d = %q, want %q", i, r.Round, wantRounds[i])
		}
		if len(r.Items) == 0 {
			t.Errorf("round %q has no items", r.Round)
		}
	}
}

func TestGenerateChecklist_ConditionalSubstitution(t *testing.T) {
	withDSA := GenerateChecklist(ExtractedSkills{"Core CS": {"DSA"}})
	if withDSA[1].Items[0] != "Solve 10 problems on arrays, strings, and sorting" {
		t.Errorf("DSA present: round 2 item 0 = %q", withDSA[1].Items[0])
	}

	without := GenerateChecklist(ExtractSkills(""))
	if without[1].Items[0] != "Review fundamental algorithms (sorting, searching)" {
		t.Errorf("DSA absent: round 2 item 0 = %q", without[1].Items[0])
	}
	// Substitution, not omission: both variants keep the same count.
	if len(withDSA[1].Items) != len(without[1].Items) {
		t.Errorf("round 2 counts differ: %d vs %d", len(withDSA[1].Items), len(without[1].Items))
	}
}

func TestGenerateChecklist_Round3Omits(t *testing.T) {
	skills := ExtractSkills("Looking for an SDE with strong DSA, OOP, Java, SQL, REST API, and Docker experience")
	round3 := GenerateChecklist(skills)[2]
	joined := strings.Join(round3.Items, "\n")

	for _, want := range []string{
		"Revise Java: JVM, collections, multithreading, Spring Boot basics",
		"Review Docker commands, Dockerfile best practices",
		"Prepare REST API design examples from your projects",
		"Revise joins, indexes, transactions, query optimization",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("round 3 missing %q", want)
		}
	}
	for _, absent := range []string{"React", "MongoDB", "cloud architecture"} {
		if strings.Contains(joined, absent) {
			t.Errorf("round 3 unexpectedly mentions %q:\n%s", absent, joined)
		}
	}
}

func TestGenerateChecklist_AnyOfTriggers(t *testing.T) {
	// PostgreSQL alone satisfies the SQL/PostgreSQL/MySQL item.
	round3 := GenerateChecklist(ExtractedSkills{"Data": {"PostgreSQL"}})[2]
	joined := strings.Join(round3.Items, "\n")
	if !strings.Contains(joined, "Revise joins, indexes, transactions, query optimization") {
		t.Errorf("PostgreSQL did not trigger the SQL revision item:\n%s", joined)
	}
}

func TestGenerateChecklist_MembershipCaseInsensitive(t *testing.T) {
	// Stored legacy records may carry differently-cased skill names.
	round2 := GenerateChecklist(ExtractedSkills{"Core CS": {"dsa"}})[1]
	if round2.Items[0] != "Solve 10 problems on arrays, strings, and sorting" {
		t.Errorf("lowercase skill not matched: %q", round2.Items[0])
	}
}
