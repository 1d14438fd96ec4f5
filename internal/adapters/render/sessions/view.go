// Package sessions renders session summaries and full documents for the
// terminal.
package sessions

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/apexworks/pitwall/internal/domain"
)

// RenderOptions carries presentation context. Now drives the relative-age
// column; a zero Now hides it.
type RenderOptions struct {
	Now time.Time
}

// RenderList renders the summary table shown by `pitwall list`.
func RenderList(summaries []domain.SessionSummary, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Recorded Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No sessions available. Import an archive with `pitwall import`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, summary := range summaries {
		lines = append(lines, renderListRow(summary, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderListRow(summary domain.SessionSummary, opts RenderOptions, s styles) string {
	parts := []string{
		s.meta.Render(summary.Date),
		s.track.Render(summary.Track),
		s.row.Render(summary.SessionType),
		s.row.Render(fmt.Sprintf("%d laps", summary.ValidLapCount)),
	}

	if summary.BestLapTime != "" {
		parts = append(parts, s.best.Render(summary.BestLapTime))
	}
	if len(summary.LapIndicators) > 0 {
		parts = append(parts, renderIndicators(summary.LapIndicators, s))
	}
	if summary.IsSpectator {
		parts = append(parts, s.spectator.Render("[spectator]"))
	}
	if summary.AIDifficulty > 0 {
		parts = append(parts, s.meta.Render(fmt.Sprintf("AI %d", summary.AIDifficulty)))
	}
	if age := relativeAge(summary.Date, opts.Now); age != "" {
		parts = append(parts, s.meta.Render("("+age+")"))
	}
	parts = append(parts, s.slug.Render(summary.Slug))

	return strings.Join(parts, "  ")
}

func renderIndicators(indicators []domain.LapIndicator, s styles) string {
	var b strings.Builder
	for _, indicator := range indicators {
		switch indicator {
		case domain.LapBest:
			b.WriteString(s.lapBest.Render("*"))
		case domain.LapValid:
			b.WriteString(s.lapValid.Render("o"))
		default:
			b.WriteString(s.lapBad.Render("x"))
		}
	}
	return b.String()
}

// RenderDetail renders the full-document view shown by `pitwall show`.
func RenderDetail(summary domain.SessionSummary, doc *domain.Document) string {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("%s - %s", summary.SessionType, summary.Track)),
		s.meta.Render(summary.Date),
	}
	if doc.SessionInfo.Weather != "" {
		lines = append(lines, s.row.Render("weather: "+doc.SessionInfo.Weather))
	}
	if summary.AIDifficulty > 0 {
		lines = append(lines, s.row.Render(fmt.Sprintf("AI difficulty: %d", summary.AIDifficulty)))
	}

	hasPlayer := false
	for i := range doc.Classification {
		if doc.Classification[i].IsPlayer {
			hasPlayer = true
			break
		}
	}

	for i := range doc.Classification {
		entry := &doc.Classification[i]
		if hasPlayer && !entry.IsPlayer {
			continue
		}
		lines = append(lines, s.section.Render(renderDriver(entry, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDriver(entry *domain.ClassificationEntry, s styles) string {
	parts := []string{s.track.Render(entry.DriverName)}

	for i, lap := range entry.LapHistory {
		if lap.LapTimeInMs <= 0 {
			continue
		}
		display := lap.LapTimeDisplay
		if display == "" {
			display = formatLapTime(lap.LapTimeInMs)
		}
		line := fmt.Sprintf("lap %2d  %s", i+1, display)
		if i+1 == entry.BestLapNum {
			line += "  " + s.lapBest.Render("(best)")
		} else if lap.LapValidBitFlags != domain.AllSectorsValid {
			line += "  " + s.lapBad.Render("(invalid)")
		}
		parts = append(parts, s.row.Render(line))
	}

	if len(entry.TyreStints) > 0 {
		parts = append(parts, s.meta.Render(renderStints(entry.TyreStints)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderStints(stints []domain.TyreStint) string {
	labels := make([]string, 0, len(stints))
	for _, stint := range stints {
		if stint.EndLap > 0 {
			labels = append(labels, fmt.Sprintf("%s L%d-%d", stint.Compound, stint.StartLap, stint.EndLap))
		} else {
			labels = append(labels, fmt.Sprintf("%s L%d-", stint.Compound, stint.StartLap))
		}
	}
	return "stints: " + strings.Join(labels, ", ")
}

func formatLapTime(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d.Minutes())
	seconds := d - time.Duration(minutes)*time.Minute
	return fmt.Sprintf("%d:%06.3f", minutes, seconds.Seconds())
}

// relativeAge renders how long ago the session was recorded. The recording
// date carries no timezone, so it is interpreted in local time.
func relativeAge(date string, now time.Time) string {
	if date == "" || now.IsZero() {
		return ""
	}
	recorded, err := time.ParseInLocation("2006-01-02T15:04:05", date, now.Location())
	if err != nil {
		return ""
	}

	age := now.Sub(recorded)
	switch {
	case age < 0:
		return ""
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
