package prepserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/analyzer"
	"github.com/jdprep/jdprep/internal/history"
)

// ConfidenceSetInput is the confidence_set input.
type ConfidenceSetInput struct {
	ID         string `json:"id" jsonschema:"Analysis record id"`
	Skill      string `json:"skill" jsonschema:"Extracted skill name to rate"`
	Confidence string `json:"confidence" jsonschema:"Self-rating: know or practice"`
}

// ConfidenceSetOutput returns the updated map and recomputed score.
type ConfidenceSetOutput struct {
	ID                 string                         `json:"id"`
	SkillConfidenceMap map[string]analyzer.Confidence `json:"skillConfidenceMap"`
	FinalScore         int                            `json:"finalScore"`
	UpdatedAt          string                         `json:"updatedAt"`
}

func registerConfidenceSet(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "confidence_set",
		Description: "Mark one extracted skill as 'know' or 'practice' on a stored analysis. Recomputes the live readiness score (base +2 per known, -2 per practice skill, clamped 0-100). Idempotent: repeating the same rating changes nothing.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ConfidenceSetInput) (*mcp.CallToolResult, ConfidenceSetOutput, error) {
		if input.ID == "" {
			return nil, ConfidenceSetOutput{}, errors.New("id is required")
		}
		if input.Skill == "" {
			return nil, ConfidenceSetOutput{}, errors.New("skill is required")
		}
		a, err := store.SetConfidence(ctx, input.ID, input.Skill, analyzer.Confidence(input.Confidence))
		if err != nil {
			return nil, ConfidenceSetOutput{}, err
		}
		return nil, ConfidenceSetOutput{
			ID:                 a.ID,
			SkillConfidenceMap: a.SkillConfidenceMap,
			FinalScore:         a.FinalScore,
			UpdatedAt:          a.UpdatedAt,
		}, nil
	})
}
