package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lap(ms int64, flags int) LapHistoryEntry {
	return LapHistoryEntry{LapTimeInMs: ms, LapValidBitFlags: flags}
}

func TestDeriveSummaryPlayerFocus(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{DriverName: "Verbeek", LapHistory: []LapHistoryEntry{lap(91000, AllSectorsValid), lap(90500, AllSectorsValid)}},
			{DriverName: "You", IsPlayer: true, LapHistory: []LapHistoryEntry{lap(92000, AllSectorsValid), lap(0, 0), lap(91750, AllSectorsValid)}},
		},
	}

	summary, ok := DeriveSummary(doc, "Race_Spa_2026_01_26_22_14_52.json")
	require.True(t, ok)

	assert.Equal(t, "race-spa-2026-01-26-22-14-52", summary.Slug)
	assert.Equal(t, "Race", summary.SessionType)
	assert.Equal(t, "Spa", summary.Track)
	assert.Equal(t, "2026-01-26T22:14:52", summary.Date)
	assert.Equal(t, 2, summary.ValidLapCount)
	assert.False(t, summary.IsSpectator)
	assert.Empty(t, summary.LapIndicators, "indicators are qualifying-only")
}

func TestDeriveSummarySpectatorTieBreak(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{DriverName: "First", LapHistory: []LapHistoryEntry{lap(90000, AllSectorsValid), lap(90100, AllSectorsValid)}},
			{DriverName: "Second", LapHistory: []LapHistoryEntry{lap(89000, AllSectorsValid), lap(89100, AllSectorsValid)}},
		},
	}

	focus, spectator := focusEntry(doc.Classification)
	require.NotNil(t, focus)
	assert.True(t, spectator)
	assert.Equal(t, "First", focus.DriverName, "earlier entry keeps the focus on ties")

	summary, ok := DeriveSummary(doc, "Race_Spa_2026_01_26_22_14_52.json")
	require.True(t, ok)
	assert.True(t, summary.IsSpectator)
}

func TestDeriveSummaryZeroValidLapsVerdict(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{DriverName: "You", IsPlayer: true, LapHistory: []LapHistoryEntry{lap(0, 0), lap(0, 0)}},
		},
	}

	summary, ok := DeriveSummary(doc, "Race_Spa_2026_01_26_22_14_52.json")
	assert.False(t, ok)
	assert.Zero(t, summary.ValidLapCount)
}

func TestDeriveSummaryEmptyClassification(t *testing.T) {
	summary, ok := DeriveSummary(&Document{}, "Race_Spa_2026_01_26_22_14_52.json")
	assert.False(t, ok)
	assert.Zero(t, summary.ValidLapCount)
	assert.False(t, summary.IsSpectator)
}

func TestDeriveSummaryQualifyingIndicators(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{
				DriverName: "You",
				IsPlayer:   true,
				BestLapNum: 2,
				LapHistory: []LapHistoryEntry{
					lap(93000, AllSectorsValid),
					lap(0, 0), // abandoned out-lap, excluded from positions
					{LapTimeInMs: 91200, LapTimeDisplay: "1:31.200", LapValidBitFlags: AllSectorsValid},
					lap(94000, 7),
				},
			},
		},
	}

	summary, ok := DeriveSummary(doc, "Short_Qualifying_Zandvoort_2026_02_07_11_33_48.json")
	require.True(t, ok)

	assert.Equal(t, []LapIndicator{LapValid, LapBest, LapInvalid}, summary.LapIndicators)
	assert.Equal(t, 3, summary.ValidLapCount)
}

func TestDeriveSummaryBestLapFromUnfilteredArray(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{
				DriverName: "You",
				IsPlayer:   true,
				BestLapNum: 3,
				LapHistory: []LapHistoryEntry{
					lap(95000, AllSectorsValid),
					lap(0, 0),
					{LapTimeInMs: 91200, LapTimeDisplay: "1:31.200", LapValidBitFlags: AllSectorsValid},
				},
			},
		},
	}

	summary, ok := DeriveSummary(doc, "Race_Spa_2026_01_26_22_14_52.json")
	require.True(t, ok)
	assert.Equal(t, "1:31.200", summary.BestLapTime)
	assert.Equal(t, int64(91200), summary.BestLapTimeMs)
}

func TestDeriveSummaryBestLapWithoutDisplayString(t *testing.T) {
	doc := &Document{
		Classification: []ClassificationEntry{
			{DriverName: "You", IsPlayer: true, BestLapNum: 1, LapHistory: []LapHistoryEntry{lap(91200, AllSectorsValid)}},
		},
	}

	summary, ok := DeriveSummary(doc, "Race_Spa_2026_01_26_22_14_52.json")
	require.True(t, ok)
	assert.Empty(t, summary.BestLapTime)
	assert.Zero(t, summary.BestLapTimeMs)
}

func TestDeriveSummaryAIDifficulty(t *testing.T) {
	offline := &Document{
		SessionInfo: SessionInfo{AIDifficulty: 87},
		Classification: []ClassificationEntry{
			{IsPlayer: true, LapHistory: []LapHistoryEntry{lap(90000, AllSectorsValid)}},
		},
	}
	online := &Document{
		SessionInfo: SessionInfo{AIDifficulty: 87, Online: true},
		Classification: []ClassificationEntry{
			{IsPlayer: true, LapHistory: []LapHistoryEntry{lap(90000, AllSectorsValid)}},
		},
	}

	offlineSummary, _ := DeriveSummary(offline, "Race_Spa_2026_01_26_22_14_52.json")
	onlineSummary, _ := DeriveSummary(online, "Race_Spa_2026_01_26_22_14_52.json")

	assert.Equal(t, 87, offlineSummary.AIDifficulty)
	assert.Zero(t, onlineSummary.AIDifficulty, "online sessions force difficulty to 0")
}

func TestSortSummariesStableDescending(t *testing.T) {
	summaries := []SessionSummary{
		{Slug: "a", Date: "2026-01-01T10:00:00"},
		{Slug: "b", Date: "2026-03-01T10:00:00"},
		{Slug: "c", Date: "2026-01-01T10:00:00"},
	}

	SortSummaries(summaries)

	require.Len(t, summaries, 3)
	assert.Equal(t, "b", summaries[0].Slug)
	assert.Equal(t, "a", summaries[1].Slug, "ties keep discovery order")
	assert.Equal(t, "c", summaries[2].Slug)
	for i := 1; i < len(summaries); i++ {
		assert.GreaterOrEqual(t, summaries[i-1].Date, summaries[i].Date)
	}
}
