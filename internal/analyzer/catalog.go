// Package analyzer derives interview-prep artifacts from raw job
// descriptions: a categorized skill set, a readiness score, a
// round-wise checklist, a 7-day study plan, and a ranked question
// list. Everything is a pure function of the input text and the static
// rule tables in this package — no network, no model calls, identical
// input always produces identical output.
package analyzer

import (
	"regexp"
	"sort"
)

// SkillRule matches one named skill in JD text. Patterns are anchored
// to word boundaries; lexically overlapping tokens are disambiguated
// with explicit trailing classes ("Java" never matches inside
// "JavaScript", "C" never matches "C++" or "C#").
type SkillRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// CategoryRules is one catalog category with its ordered skill rules.
// Order drives output ordering only, never matching.
type CategoryRules struct {
	Name   string
	Skills []SkillRule
}

// ExtractedSkills maps category name → matched skill names in catalog
// order. A category is present only if at least one skill matched.
type ExtractedSkills map[string][]string

const fallbackCategory = "General"

// fallbackSkills is returned when nothing in the catalog matched.
var fallbackSkills = []string{
	"Communication",
	"Problem solving",
	"Basic coding",
	"Projects",
}

func rule(name, pattern string) SkillRule {
	return SkillRule{Name: name, Pattern: regexp.MustCompile(pattern)}
}

// categoryRules is the full pattern catalog. Adding a skill or
// category here is all it takes — the extractor and generators walk
// this table and never name skills themselves.
var categoryRules = []CategoryRules{
	{Name: "Core CS", Skills: []SkillRule{
		rule("DSA", `(?i)\bDSA\b|\bData Structures?\b|\bAlgorithm`),
		rule("OOP", `(?i)\bOOP\b|\bObject[- ]Oriented\b`),
		rule("DBMS", `(?i)\bDBMS\b|\bDatabase Management\b`),
		rule("OS", `(?i)\bOS\b|\bOperating System`),
		rule("Networks", `(?i)\bNetworking?\b|\bComputer Network|\bTCP/IP\b|\bHTTP\b`),
	}},
	{Name: "Languages", Skills: []SkillRule{
		rule("Java", `(?i)\bJava\b`),
		rule("Python", `(?i)\bPython\b`),
		rule("JavaScript", `(?i)\bJavaScript\b|\bJS\b`),
		rule("TypeScript", `(?i)\bTypeScript\b|\bTS\b`),
		// RE2 has no lookahead; the trailing class keeps the bare "C"
		// token from matching inside "C++", "C#" or longer words.
		rule("C", `(?i)\bC(?:$|[^+#\w])`),
		rule("C++", `(?i)\bC\+\+`),
		rule("C#", `(?i)\bC#`),
		rule("Go", `(?i)\bGolang\b|\bGo\b`),
	}},
	{Name: "Web", Skills: []SkillRule{
		rule("React", `(?i)\bReact(?:\.js|JS)?\b`),
		rule("Next.js", `(?i)\bNext\.?js\b`),
		rule("Node.js", `(?i)\bNode\.?js\b`),
		rule("Express", `(?i)\bExpress(?:\.js)?\b`),
		rule("REST", `(?i)\bREST(?:ful)?\b|\bREST API`),
		rule("GraphQL", `(?i)\bGraphQL\b`),
	}},
	{Name: "Data", Skills: []SkillRule{
		rule("SQL", `(?i)\bSQL\b`),
		rule("MongoDB", `(?i)\bMongoDB\b`),
		rule("PostgreSQL", `(?i)\bPostgreSQL\b|\bPostgres\b`),
		rule("MySQL", `(?i)\bMySQL\b`),
		rule("Redis", `(?i)\bRedis\b`),
	}},
	{Name: "Cloud/DevOps", Skills: []SkillRule{
		rule("AWS", `(?i)\bAWS\b|\bAmazon Web Services\b`),
		rule("Azure", `(?i)\bAzure\b`),
		rule("GCP", `(?i)\bGCP\b|\bGoogle Cloud\b`),
		rule("Docker", `(?i)\bDocker\b`),
		rule("Kubernetes", `(?i)\bKubernetes\b|\bK8s\b`),
		rule("CI/CD", `(?i)\bCI/CD\b|\bCI[- ]CD\b|\bContinuous Integration\b`),
		rule("Linux", `(?i)\bLinux\b|\bUnix\b`),
	}},
	{Name: "Testing", Skills: []SkillRule{
		rule("Selenium", `(?i)\bSelenium\b`),
		rule("Cypress", `(?i)\bCypress\b`),
		rule("Playwright", `(?i)\bPlaywright\b`),
		rule("JUnit", `(?i)\bJUnit\b`),
		rule("PyTest", `(?i)\bpy\.?test\b`),
	}},
}

// ExtractSkills tests every catalog rule against jdText and collects
// matches per category. Never returns an empty mapping: when nothing
// matches, the General fallback set is returned instead.
func ExtractSkills(jdText string) ExtractedSkills {
	detected := make(ExtractedSkills)
	for _, cat := range categoryRules {
		var found []string
		for _, sk := range cat.Skills {
			if sk.Pattern.MatchString(jdText) {
				found = append(found, sk.Name)
			}
		}
		if len(found) > 0 {
			detected[cat.Name] = found
		}
	}
	if len(detected) == 0 {
		detected[fallbackCategory] = append([]string(nil), fallbackSkills...)
	}
	return detected
}

// FlattenSkills returns every extracted skill as a single list in
// catalog order (category order, then skill order within a category),
// with General fallback skills last. Categories a legacy record may
// carry that are no longer in the catalog are appended after that, in
// the order they would sort, so the result stays deterministic.
func FlattenSkills(skills ExtractedSkills) []string {
	var out []string
	covered := make(map[string]bool, len(categoryRules)+1)
	for _, cat := range categoryRules {
		out = append(out, skills[cat.Name]...)
		covered[cat.Name] = true
	}
	out = append(out, skills[fallbackCategory]...)
	covered[fallbackCategory] = true

	var rest []string
	for name := range skills {
		if !covered[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, skills[name]...)
	}
	return out
}

// CategoryOrder returns the catalog's category names in table order,
// with the General fallback last. Used by renderers that need ordered
// iteration over an ExtractedSkills map.
func CategoryOrder() []string {
	names := make([]string, 0, len(categoryRules)+1)
	for _, cat := range categoryRules {
		names = append(names, cat.Name)
	}
	return append(names, fallbackCategory)
}
