package analyzer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Confidence is the user's self-rating for one extracted skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"

	// confidencePoints is the score swing per toggled skill.
	confidencePoints = 2
)

// Analysis is the persisted record of one JD analysis. Everything
// derived at creation is immutable afterwards except SkillConfidenceMap
// and FinalScore, which change together via SetConfidence.
type Analysis struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText"`

	ExtractedSkills ExtractedSkills  `json:"extractedSkills"`
	CompanyIntel    CompanyIntel     `json:"companyIntel"`
	Checklist       []ChecklistRound `json:"checklist"`
	Plan            []PlanBlock      `json:"plan"`
	Questions       []string         `json:"questions"`

	// BaseScore never changes after creation. FinalScore always equals
	// LiveScore(BaseScore, SkillConfidenceMap) — at creation, after
	// every SetConfidence, and after every store read. ReadinessScore
	// mirrors BaseScore for records written before the base/final
	// split; the read path is MigrateStored.
	BaseScore      int `json:"baseScore"`
	FinalScore     int `json:"finalScore"`
	ReadinessScore int `json:"readinessScore"`

	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
}

// AnalyzeInput is the sole entry point's argument. All fields may be
// empty; a blank JD simply lands on the General fallback.
type AnalyzeInput struct {
	Company string
	Role    string
	JDText  string
}

// Identity stamping is the only non-determinism in the package. Tests
// pin these to fixed values.
var (
	nowFn   = time.Now
	newIDFn = uuid.NewString
)

var intelProvider IntelProvider = StaticIntel{}

// SetIntelProvider replaces the company-intel collaborator. The
// default is StaticIntel.
func SetIntelProvider(p IntelProvider) { intelProvider = p }

// AnalyzeJD runs the full pipeline: normalize → extract → score →
// generate checklist/plan/questions → company intel → seed confidence.
// Total over its input domain; never fails.
func AnalyzeJD(in AnalyzeInput) *Analysis {
	company := strings.TrimSpace(in.Company)
	role := strings.TrimSpace(in.Role)
	jd := NormalizeJD(in.JDText)

	skills := ExtractSkills(jd)
	base := CalcReadinessScore(ScoreInput{
		Skills:  skills,
		Company: company,
		Role:    role,
		JDText:  jd,
	})

	confidence := make(map[string]Confidence)
	for _, s := range FlattenSkills(skills) {
		confidence[s] = ConfidencePractice
	}

	now := nowFn().UTC().Format(time.RFC3339)
	metrics.Analyses.Add(1)

	return &Analysis{
		ID:        newIDFn(),
		CreatedAt: now,
		UpdatedAt: now,

		Company: company,
		Role:    role,
		JDText:  jd,

		ExtractedSkills: skills,
		CompanyIntel:    intelProvider.BuildCompanyIntel(company, skills),
		Checklist:       GenerateChecklist(skills),
		Plan:            GeneratePlan(skills),
		Questions:       GenerateQuestions(skills),

		BaseScore:      base,
		FinalScore:     LiveScore(base, confidence),
		ReadinessScore: base,

		SkillConfidenceMap: confidence,
	}
}
