package prepserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/analyzer"
	"github.com/jdprep/jdprep/internal/history"
)

// ExportInput is the prep_export input.
type ExportInput struct {
	ID     string `json:"id" jsonschema:"Analysis record id"`
	Format string `json:"format,omitempty" jsonschema:"What to render: report (default, everything), plan, checklist, questions"`
}

// ExportOutput carries the plain-text rendering.
type ExportOutput struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Text   string `json:"text"`
}

func registerExport(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "prep_export",
		Description: "Render a stored analysis as stable plain text for copy or download: the full report, or just the study plan, checklist, or question list. Output is reproducible from the record alone.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		if input.ID == "" {
			return nil, ExportOutput{}, errors.New("id is required")
		}
		a, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		format, text, err := renderExport(a, input.Format)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{ID: a.ID, Format: format, Text: text}, nil
	})
}

// renderExport resolves the requested format, renders it, and counts
// the export. Every served format counts, not just full reports.
func renderExport(a *analyzer.Analysis, format string) (string, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "report"
	}
	var text string
	switch format {
	case "report":
		text = analyzer.ReportText(a)
	case "plan":
		text = analyzer.PlanText(a.Plan)
	case "checklist":
		text = analyzer.ChecklistText(a.Checklist)
	case "questions":
		text = analyzer.QuestionsText(a.Questions)
	default:
		return "", "", fmt.Errorf("invalid format %q (valid: report, plan, checklist, questions)", format)
	}
	analyzer.IncrExports()
	return format, text, nil
}
