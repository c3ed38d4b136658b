package analyzer

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Operational counters, thread-safe via atomics.
var metrics struct {
	Analyses          atomic.Int64
	ConfidenceUpdates atomic.Int64
	HistoryReads      atomic.Int64
	CorruptedSkipped  atomic.Int64
	Exports           atomic.Int64
}

// IncrHistoryReads is incremented by the history store on every list
// or get.
func IncrHistoryReads() { metrics.HistoryReads.Add(1) }

// IncrCorruptedSkipped counts stored rows dropped by validation.
func IncrCorruptedSkipped(n int64) { metrics.CorruptedSkipped.Add(n) }

// IncrExports counts served export renderings, whatever the format.
func IncrExports() { metrics.Exports.Add(1) }

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"analyses":           metrics.Analyses.Load(),
		"confidence_updates": metrics.ConfidenceUpdates.Load(),
		"history_reads":      metrics.HistoryReads.Load(),
		"corrupted_skipped":  metrics.CorruptedSkipped.Load(),
		"exports":            metrics.Exports.Load(),
	}
}

// FormatMetrics returns counters as a simple text format for the HTTP
// metrics endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyses", "confidence_updates",
		"history_reads", "corrupted_skipped",
		"exports",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
