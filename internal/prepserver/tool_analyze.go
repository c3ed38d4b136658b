package prepserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/analyzer"
	"github.com/jdprep/jdprep/internal/history"
)

// AnalyzeToolInput is the jd_analyze input.
type AnalyzeToolInput struct {
	Company string `json:"company,omitempty" jsonschema:"Company name (optional, improves score and intel)"`
	Role    string `json:"role,omitempty" jsonschema:"Role title (optional)"`
	JDText  string `json:"jd_text" jsonschema:"Raw job description text; pasted HTML is accepted and normalized"`
}

// AnalyzeToolOutput wraps the stored record with a short-JD warning
// flag for the caller's UI.
type AnalyzeToolOutput struct {
	Analysis       *analyzer.Analysis `json:"analysis"`
	ShortJDWarning bool               `json:"short_jd_warning,omitempty"`
}

func registerAnalyze(server *mcp.Server, store history.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_analyze",
		Description: "Analyze a job description and derive a categorized skill set, a 0-100 readiness score, a round-wise preparation checklist, a 7-day study plan, and up to 10 likely interview questions. Fully deterministic: the same JD always yields the same analysis. The record is persisted to history.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeToolInput) (*mcp.CallToolResult, AnalyzeToolOutput, error) {
		trimmed := strings.TrimSpace(input.JDText)
		if trimmed == "" {
			return nil, AnalyzeToolOutput{}, errors.New("jd_text is required")
		}

		a := analyzer.AnalyzeJD(analyzer.AnalyzeInput{
			Company: input.Company,
			Role:    input.Role,
			JDText:  input.JDText,
		})
		if err := store.Add(ctx, a); err != nil {
			return nil, AnalyzeToolOutput{}, err
		}

		slog.Info("jd analyzed",
			slog.String("id", a.ID),
			slog.String("company", a.Company),
			slog.Int("base_score", a.BaseScore),
		)
		return nil, AnalyzeToolOutput{
			Analysis:       a,
			ShortJDWarning: utf8.RuneCountInString(trimmed) < analyzer.ShortJDWarnChars,
		}, nil
	})
}
