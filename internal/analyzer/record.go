package analyzer

import (
	"encoding/json"
	"fmt"
)

// SetConfidence sets one skill's self-rating and recomputes
// FinalScore. The skill must be present in the extracted set — the
// confidence map never grows orphan keys. Repeating the same call is a
// no-op; toggling back restores the previous map and score exactly.
func (a *Analysis) SetConfidence(skill string, c Confidence) error {
	if c != ConfidenceKnow && c != ConfidencePractice {
		return fmt.Errorf("analyzer: invalid confidence %q (valid: know, practice)", c)
	}
	if _, ok := a.SkillConfidenceMap[skill]; !ok {
		return fmt.Errorf("analyzer: skill %q was not extracted for this analysis", skill)
	}
	a.SkillConfidenceMap[skill] = c
	a.FinalScore = LiveScore(a.BaseScore, a.SkillConfidenceMap)
	metrics.ConfidenceUpdates.Add(1)
	return nil
}

// ValidStoredRecord reports whether raw JSON may be surfaced as an
// analysis record: an object carrying a non-empty string id, a string
// createdAt, and an object-valued extractedSkills. Anything else is a
// corrupted row the caller drops.
func ValidStoredRecord(raw []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}

	var id string
	if err := json.Unmarshal(fields["id"], &id); err != nil || id == "" {
		return false
	}
	var createdAt string
	if err := json.Unmarshal(fields["createdAt"], &createdAt); err != nil {
		return false
	}
	// Unmarshal accepts the literal null into a map, leaving it nil.
	var skills map[string]json.RawMessage
	if err := json.Unmarshal(fields["extractedSkills"], &skills); err != nil || skills == nil {
		return false
	}
	return true
}

// DecodeStored validates and decodes one persisted record, applying
// the legacy-field migration. ok is false for corrupted rows.
func DecodeStored(raw []byte) (a *Analysis, ok bool) {
	if !ValidStoredRecord(raw) {
		return nil, false
	}
	a = &Analysis{}
	if err := json.Unmarshal(raw, a); err != nil {
		return nil, false
	}
	MigrateStored(a)
	return a, true
}

// MigrateStored normalizes a record loaded from the history store so
// every consumer sees the current shape:
//   - baseScore falls back to the legacy readinessScore field, and the
//     alias is re-mirrored for old readers;
//   - the confidence map is rebuilt against the extracted skills —
//     missing skills default to "practice", orphan keys are dropped,
//     unknown values are reset;
//   - finalScore is recomputed from base + map, so stale or absent
//     liveScore values from old writers can never disagree with it.
func MigrateStored(a *Analysis) {
	if a.BaseScore == 0 && a.ReadinessScore != 0 {
		a.BaseScore = a.ReadinessScore
	}
	a.ReadinessScore = a.BaseScore

	rebuilt := make(map[string]Confidence)
	for _, s := range FlattenSkills(a.ExtractedSkills) {
		switch a.SkillConfidenceMap[s] {
		case ConfidenceKnow:
			rebuilt[s] = ConfidenceKnow
		default:
			rebuilt[s] = ConfidencePractice
		}
	}
	a.SkillConfidenceMap = rebuilt
	a.FinalScore = LiveScore(a.BaseScore, a.SkillConfidenceMap)
}
