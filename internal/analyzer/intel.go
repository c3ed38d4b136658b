package analyzer

import "strings"

// IntelRound is one expected interview round for a company.
type IntelRound struct {
	Name  string `json:"name"`
	Focus string `json:"focus"`
}

// CompanyIntel is the collaborator result stored verbatim on the
// analysis record. Consumers only rely on Rounds being present.
type CompanyIntel struct {
	Company string       `json:"company,omitempty"`
	Rounds  []IntelRound `json:"rounds"`
	Notes   string       `json:"notes,omitempty"`
}

// IntelProvider builds company-specific interview-round metadata from
// the company name and the extracted skill set. Implementations must
// be deterministic for identical inputs.
type IntelProvider interface {
	BuildCompanyIntel(company string, skills ExtractedSkills) CompanyIntel
}

// StaticIntel is the default provider: a fixed table of well-known
// hiring processes plus a category-derived generic process. No lookups
// outside this file.
type StaticIntel struct{}

var knownProcesses = map[string][]IntelRound{
	"tcs": {
		{Name: "NQT Online Test", Focus: "Aptitude, verbal, basic coding"},
		{Name: "Technical Interview", Focus: "Core CS, projects, one language in depth"},
		{Name: "Managerial + HR", Focus: "Scenarios, relocation, attitude"},
	},
	"infosys": {
		{Name: "Online Assessment", Focus: "Aptitude, logical reasoning, pseudocode"},
		{Name: "Technical Interview", Focus: "Programming basics, DBMS, projects"},
		{Name: "HR Interview", Focus: "Communication, flexibility, goals"},
	},
	"wipro": {
		{Name: "NLTH Online Test", Focus: "Aptitude, written communication, coding"},
		{Name: "Technical Interview", Focus: "Core CS, coding on paper or IDE"},
		{Name: "HR Interview", Focus: "Background, service agreement, mobility"},
	},
	"accenture": {
		{Name: "Cognitive + Technical Assessment", Focus: "Aptitude, MS Office, pseudocode, networks"},
		{Name: "Coding Round", Focus: "Two problems in a language of choice"},
		{Name: "Communication Assessment", Focus: "Listening and spoken English"},
		{Name: "Interview", Focus: "Tech + HR combined"},
	},
	"amazon": {
		{Name: "Online Assessment", Focus: "Two DSA problems + workstyle survey"},
		{Name: "Technical Interviews (2–3)", Focus: "DSA, problem solving, CS fundamentals"},
		{Name: "Bar Raiser", Focus: "Leadership principles, behavioral depth"},
	},
	"google": {
		{Name: "Online Assessment / Phone Screen", Focus: "Two coding questions, 45 min"},
		{Name: "Onsite Coding (3–4)", Focus: "DSA, complexity tradeoffs, clean code"},
		{Name: "Googleyness + Leadership", Focus: "Behavioral, collaboration"},
	},
	"microsoft": {
		{Name: "Online Assessment", Focus: "Coding, debugging"},
		{Name: "Technical Interviews (2–3)", Focus: "DSA, design basics, projects"},
		{Name: "AA Round", Focus: "As-appropriate: culture fit, final evaluation"},
	},
}

// BuildCompanyIntel returns the known process for recognized companies
// and otherwise derives a generic process from the detected categories.
func (StaticIntel) BuildCompanyIntel(company string, skills ExtractedSkills) CompanyIntel {
	name := strings.TrimSpace(company)
	if rounds, ok := knownProcesses[strings.ToLower(name)]; ok {
		return CompanyIntel{
			Company: name,
			Rounds:  append([]IntelRound(nil), rounds...),
			Notes:   "Typical publicly known process; rounds vary by role and location.",
		}
	}

	rounds := []IntelRound{
		{Name: "Aptitude / Online Test", Focus: "Quantitative, logical reasoning, basics"},
	}
	if len(skills["Core CS"]) > 0 {
		rounds = append(rounds, IntelRound{Name: "DSA & Core CS Round", Focus: strings.Join(skills["Core CS"], ", ")})
	} else {
		rounds = append(rounds, IntelRound{Name: "Coding Fundamentals Round", Focus: "Basic problem solving in any language"})
	}
	rounds = append(rounds,
		IntelRound{Name: "Technical Interview", Focus: techFocus(skills)},
		IntelRound{Name: "HR Interview", Focus: "Background, motivation, fit"},
	)
	return CompanyIntel{
		Company: name,
		Rounds:  rounds,
		Notes:   "Generic process derived from the JD; no company-specific data available.",
	}
}

// techFocus names the matched stack for the tech round, catalog order.
func techFocus(skills ExtractedSkills) string {
	var parts []string
	for _, cat := range CategoryOrder() {
		if cat == "Core CS" || cat == fallbackCategory {
			continue
		}
		parts = append(parts, skills[cat]...)
	}
	if len(parts) == 0 {
		return "Projects and general programming"
	}
	if len(parts) > 6 {
		parts = parts[:6]
	}
	return "Projects + " + strings.Join(parts, ", ")
}
