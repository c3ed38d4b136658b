package prepserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go-kit/strutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/analyzer"
	"github.com/jdprep/jdprep/internal/history"
)

// jdPreviewChars caps the JD excerpt shown in history summaries.
const jdPreviewChars = 160

// HistoryListInput is the prep_history_list input.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max entries to return (default 50)"`
}

// HistorySummary is one list entry: enough to render a history row
// without the full record.
type HistorySummary struct {
	ID         string `json:"id"`
	Company    string `json:"company"`
	Role       string `json:"role"`
	BaseScore  int    `json:"baseScore"`
	FinalScore int    `json:"finalScore"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	JDPreview  string `json:"jdPreview"`
	SkillCount int    `json:"skillCount"`
}

// HistoryListOutput is the prep_history_list result.
type HistoryListOutput struct {
	Entries          []HistorySummary `json:"entries"`
	Total            int              `json:"total"`
	CorruptedSkipped int              `json:"corrupted_skipped,omitempty"`
}

func registerHistoryList(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "prep_history_list",
		Description: "List stored JD analyses, newest first: company, role, scores, timestamps, and a short JD preview. Corrupted stored entries are skipped and counted, never returned.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryListInput) (*mcp.CallToolResult, HistoryListOutput, error) {
		records, corrupted, err := store.List(ctx, input.Limit)
		if err != nil {
			return nil, HistoryListOutput{}, err
		}
		entries := make([]HistorySummary, 0, len(records))
		for _, a := range records {
			entries = append(entries, HistorySummary{
				ID:         a.ID,
				Company:    a.Company,
				Role:       a.Role,
				BaseScore:  a.BaseScore,
				FinalScore: a.FinalScore,
				CreatedAt:  a.CreatedAt,
				UpdatedAt:  a.UpdatedAt,
				JDPreview:  strutil.TruncateAtWord(a.JDText, jdPreviewChars),
				SkillCount: len(analyzer.FlattenSkills(a.ExtractedSkills)),
			})
		}
		return nil, HistoryListOutput{
			Entries:          entries,
			Total:            len(entries),
			CorruptedSkipped: corrupted,
		}, nil
	})
}

// HistoryGetInput is the prep_history_get input.
type HistoryGetInput struct {
	ID string `json:"id" jsonschema:"Analysis record id"`
}

func registerHistoryGet(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "prep_history_get",
		Description: "Fetch one stored analysis by id: extracted skills, scores, checklist, plan, questions, company intel, and the skill confidence map.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryGetInput) (*mcp.CallToolResult, *analyzer.Analysis, error) {
		if input.ID == "" {
			return nil, nil, errors.New("id is required")
		}
		a, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, nil, err
		}
		return nil, a, nil
	})
}

// HistoryClearInput is the prep_history_clear input.
type HistoryClearInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true; clearing removes every stored analysis"`
}

// HistoryClearOutput acknowledges the clear.
type HistoryClearOutput struct {
	Cleared bool `json:"cleared"`
}

func registerHistoryClear(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "prep_history_clear",
		Description: "Delete every stored analysis. Requires confirm=true. This is the only way records are ever removed.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryClearInput) (*mcp.CallToolResult, HistoryClearOutput, error) {
		if !input.Confirm {
			return nil, HistoryClearOutput{}, errors.New("confirm must be true to clear history")
		}
		if err := store.Clear(ctx); err != nil {
			return nil, HistoryClearOutput{}, err
		}
		return nil, HistoryClearOutput{Cleared: true}, nil
	})
}
