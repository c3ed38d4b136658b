package analyzer

import (
	"reflect"
	"testing"
)

func TestExtractSkills_Fallback(t *testing.T) {
	want := ExtractedSkills{
		"General": {"Communication", "Problem solving", "Basic coding", "Projects"},
	}
	for _, text := range []string{"", "the quick brown fox"} {
		got := ExtractSkills(text)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ExtractSkills(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestExtractSkills_Deterministic(t *testing.T) {
	text := "Looking for an SDE with strong DSA, OOP, Java, SQL, REST API, and Docker experience"
	first := ExtractSkills(text)
	for i := 0; i < 5; i++ {
		if got := ExtractSkills(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d diverged: %v vs %v", i, got, first)
		}
	}
}

func TestExtractSkills_Disambiguation(t *testing.T) {
	got := ExtractSkills("Experience with Java and JavaScript")
	want := []string{"Java", "JavaScript"}
	if !reflect.DeepEqual(got["Languages"], want) {
		t.Errorf("Languages = %v, want %v", got["Languages"], want)
	}

	got = ExtractSkills("C++ developer, not plain C")
	langs := got["Languages"]
	if !containsStr(langs, "C") || !containsStr(langs, "C++") {
		t.Errorf("Languages = %v, want both C and C++", langs)
	}
}

func TestExtractSkills_NoCrossMatches(t *testing.T) {
	tests := []struct {
		text     string
		category string
		absent   string
	}{
		{"Pure JavaScript role", "Languages", "Java"},
		{"C# and .NET stack", "Languages", "C"},
		{"C++ systems programming", "Languages", "C"},
		{"TypeScript frontend", "Languages", "Java"},
	}
	for _, tt := range tests {
		got := ExtractSkills(tt.text)
		if containsStr(got[tt.category], tt.absent) {
			t.Errorf("ExtractSkills(%q): %s unexpectedly contains %q (%v)",
				tt.text, tt.category, tt.absent, got[tt.category])
		}
	}
}

func TestExtractSkills_PatternVariants(t *testing.T) {
	tests := []struct {
		text     string
		category string
		skill    string
	}{
		{"data structures and algorithms", "Core CS", "DSA"},
		{"object-oriented design", "Core CS", "OOP"},
		{"TCP/IP fundamentals", "Core CS", "Networks"},
		{"Golang microservices", "Languages", "Go"},
		{"ReactJS experience", "Web", "React"},
		{"Nodejs backend", "Web", "Node.js"},
		{"RESTful services", "Web", "REST"},
		{"Postgres tuning", "Data", "PostgreSQL"},
		{"K8s deployments", "Cloud/DevOps", "Kubernetes"},
		{"CI-CD pipelines", "Cloud/DevOps", "CI/CD"},
		{"Amazon Web Services infra", "Cloud/DevOps", "AWS"},
		{"pytest suites", "Testing", "PyTest"},
	}
	for _, tt := range tests {
		got := ExtractSkills(tt.text)
		if !containsStr(got[tt.category], tt.skill) {
			t.Errorf("ExtractSkills(%q): want %s in %s, got %v",
				tt.text, tt.skill, tt.category, got[tt.category])
		}
	}
}

func TestExtractSkills_CategoryOnlyWithMatches(t *testing.T) {
	got := ExtractSkills("Python developer")
	if len(got) != 1 {
		t.Fatalf("expected only Languages, got %v", got)
	}
	if !reflect.DeepEqual(got["Languages"], []string{"Python"}) {
		t.Errorf("Languages = %v", got["Languages"])
	}
}

func TestFlattenSkills_CatalogOrder(t *testing.T) {
	skills := ExtractSkills("DSA, OOP, Java, SQL, REST API, and Docker")
	got := FlattenSkills(skills)
	want := []string{"DSA", "OOP", "Java", "REST", "SQL", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenSkills = %v, want %v", got, want)
	}
}

func TestFlattenSkills_UnknownCategoriesAppended(t *testing.T) {
	skills := ExtractedSkills{
		"Languages": {"Java"},
		"Mobile":    {"Flutter"}, // legacy category not in the catalog
	}
	got := FlattenSkills(skills)
	want := []string{"Java", "Flutter"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenSkills = %v, want %v", got, want)
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
