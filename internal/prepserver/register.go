// Package prepserver registers the JD-analysis MCP tools: jd_analyze,
// confidence_set, prep_history_list/get/clear, prep_export.
package prepserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jdprep/jdprep/internal/history"
)

// RegisterTools registers every tool on the given MCP server, bound to
// the history store.
func RegisterTools(server *mcp.Server, store history.Store) {
	registerAnalyze(server, store)
	registerConfidenceSet(server, store)
	registerHistoryList(server, store)
	registerHistoryGet(server, store)
	registerHistoryClear(server, store)
	registerExport(server, store)
}
