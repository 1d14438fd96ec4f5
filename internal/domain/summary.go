package domain

import "sort"

// LapIndicator classifies one qualifying lap for display.
type LapIndicator string

const (
	LapValid   LapIndicator = "valid"
	LapInvalid LapIndicator = "invalid"
	LapBest    LapIndicator = "best"
)

// SessionSummary is the lightweight per-session record shown in list views.
// Immutable once derived.
type SessionSummary struct {
	RelativePath  string         `json:"relativePath"`
	Slug          string         `json:"slug"`
	SessionType   string         `json:"sessionType"`
	Track         string         `json:"track"`
	Date          string         `json:"date"`
	ValidLapCount int            `json:"validLapCount"`
	LapIndicators []LapIndicator `json:"lapIndicators,omitempty"`
	BestLapTime   string         `json:"bestLapTime,omitempty"`
	BestLapTimeMs int64          `json:"bestLapTimeMs,omitempty"`
	AIDifficulty  int            `json:"aiDifficulty,omitempty"`
	IsSpectator   bool           `json:"isSpectator,omitempty"`
}

// DeriveSummary computes the list-view summary for one document. The boolean
// verdict is validLapCount > 0; callers own the decision to drop documents
// that fail it, DeriveSummary only reports it.
func DeriveSummary(doc *Document, relativePath string) (SessionSummary, bool) {
	meta := ParseFilename(relativePath)

	summary := SessionSummary{
		RelativePath: relativePath,
		Slug:         Slug(relativePath),
		SessionType:  meta.SessionType,
		Track:        meta.Track,
		Date:         meta.Date,
	}

	if !doc.SessionInfo.Online {
		summary.AIDifficulty = doc.SessionInfo.AIDifficulty
	}

	focus, spectator := focusEntry(doc.Classification)
	if focus == nil {
		return summary, false
	}
	summary.IsSpectator = spectator
	summary.ValidLapCount = countPositiveLaps(focus.LapHistory)

	if meta.SessionType == SessionTypeShortQualifying || meta.SessionType == SessionTypeOneShotQualifying {
		summary.LapIndicators = qualifyingIndicators(focus)
	}

	if focus.BestLapNum > 0 && focus.BestLapNum <= len(focus.LapHistory) {
		best := focus.LapHistory[focus.BestLapNum-1]
		if best.LapTimeDisplay != "" {
			summary.BestLapTime = best.LapTimeDisplay
			summary.BestLapTimeMs = best.LapTimeInMs
		}
	}

	return summary, summary.ValidLapCount > 0
}

// focusEntry picks the classification entry the summary is computed from:
// the player if one is flagged, otherwise the entry with the most completed
// laps. Strict > comparison keeps the earliest entry on ties.
func focusEntry(entries []ClassificationEntry) (*ClassificationEntry, bool) {
	for i := range entries {
		if entries[i].IsPlayer {
			return &entries[i], false
		}
	}

	var focus *ClassificationEntry
	mostLaps := -1
	for i := range entries {
		if n := countPositiveLaps(entries[i].LapHistory); n > mostLaps {
			focus = &entries[i]
			mostLaps = n
		}
	}
	return focus, focus != nil
}

func countPositiveLaps(laps []LapHistoryEntry) int {
	n := 0
	for _, lap := range laps {
		if lap.LapTimeInMs > 0 {
			n++
		}
	}
	return n
}

// qualifyingIndicators tags each completed lap. BestLapNum is matched
// against the lap's 1-based position within the completed-lap subsequence.
func qualifyingIndicators(entry *ClassificationEntry) []LapIndicator {
	var indicators []LapIndicator
	position := 0
	for _, lap := range entry.LapHistory {
		if lap.LapTimeInMs <= 0 {
			continue
		}
		position++
		switch {
		case position == entry.BestLapNum:
			indicators = append(indicators, LapBest)
		case lap.LapValidBitFlags == AllSectorsValid:
			indicators = append(indicators, LapValid)
		default:
			indicators = append(indicators, LapInvalid)
		}
	}
	return indicators
}

// SortSummaries orders a summary list by date descending. The sort is stable:
// equal dates keep their discovery order.
func SortSummaries(summaries []SessionSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date > summaries[j].Date
	})
}
