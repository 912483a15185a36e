package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showtix/internal/models"
)

func testEvent(id, artist string, date time.Time) models.Event {
	return models.Event{
		EventID:          id,
		ArtistName:       artist,
		EventName:        artist + " Live",
		Date:             date,
		Venue:            "Test Arena",
		TicketPrice:      1500,
		TotalTickets:     1000,
		AvailableTickets: 1000,
	}
}

func TestRankEmptyPreferences(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("event1", "Arijit Singh", base),
		testEvent("event2", "Badshah", base.Add(24*time.Hour)),
		testEvent("event3", "Neha Kakkar", base.Add(48*time.Hour)),
	}

	ranked := Rank(events, nil)

	require.Len(t, ranked, len(events))
	for i, re := range ranked {
		assert.Equal(t, events[i].EventID, re.EventID, "input order must be preserved")
		assert.Equal(t, 0, re.UserRelevanceScore)
	}
}

func TestRankScoringExample(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		testEvent("event1", "Arijit Singh", time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)),
	}
	artists := []models.Artist{
		{Name: "arijit singh", Popularity: 90},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 1)
	// positionScore=100, round(0.7*100 + 0.3*90) = 97
	assert.Equal(t, 97, ranked[0].UserRelevanceScore)
}

func TestRankSubstringMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		eventArtist   string
		prefName      string
		expectedMatch bool
	}{
		{"Exact case-insensitive", "Arijit Singh", "arijit singh", true},
		{"Preference inside event artist", "DIVINE x Friends", "DIVINE", true},
		{"Event artist inside preference", "Rahman", "A.R. Rahman feat. Rahman", true},
		{"No overlap", "Badshah", "Shreya Ghoshal", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := []models.Event{
				testEvent("event1", tc.eventArtist, time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)),
			}
			artists := []models.Artist{
				{Name: tc.prefName, Popularity: 50},
			}

			ranked := Rank(events, artists)

			require.Len(t, ranked, 1)
			if tc.expectedMatch {
				assert.Positive(t, ranked[0].UserRelevanceScore)
			} else {
				assert.Zero(t, ranked[0].UserRelevanceScore)
			}
		})
	}
}

func TestRankFirstMatchWins(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		testEvent("event1", "Arijit Singh", time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)),
	}
	// Both entries match; only the first in preference order counts.
	artists := []models.Artist{
		{Name: "Singh", Popularity: 10},
		{Name: "Arijit Singh", Popularity: 100},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 1)
	// index 0: round(0.7*100 + 0.3*10) = 73
	assert.Equal(t, 73, ranked[0].UserRelevanceScore)
}

func TestRankPositionScoreFloor(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		testEvent("event1", "Deep Cut", time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)),
	}

	// Matching artist sits at index 25, far enough down the list that the
	// position score bottoms out at zero.
	artists := make([]models.Artist, 26)
	for i := range artists {
		artists[i] = models.Artist{Name: "Filler", Popularity: 0}
	}
	artists[25] = models.Artist{Name: "Deep Cut", Popularity: 80}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 1)
	// positionScore clamped to 0, round(0.3*80) = 24
	assert.Equal(t, 24, ranked[0].UserRelevanceScore)
}

func TestRankOrdering(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("unmatched", "Unknown Artist", base),
		testEvent("second", "Badshah", base.Add(24*time.Hour)),
		testEvent("first", "Arijit Singh", base.Add(48*time.Hour)),
	}
	artists := []models.Artist{
		{Name: "Arijit Singh", Popularity: 90},
		{Name: "Badshah", Popularity: 85},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].EventID)
	assert.Equal(t, "second", ranked[1].EventID)
	assert.Equal(t, "unmatched", ranked[2].EventID)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t,
			ranked[i-1].UserRelevanceScore,
			ranked[i].UserRelevanceScore,
			"scores must be non-increasing",
		)
	}
}

func TestRankTieBreakByDate(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		testEvent("later", "Arijit Singh", time.Date(2025, 1, 1, 19, 0, 0, 0, time.UTC)),
		testEvent("earlier", "Arijit Singh", time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)),
	}
	artists := []models.Artist{
		{Name: "Arijit Singh", Popularity: 90},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 2)
	assert.Equal(t, "earlier", ranked[0].EventID)
	assert.Equal(t, "later", ranked[1].EventID)
}

func TestRankStableForFullTies(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("a", "No Match A", date),
		testEvent("b", "No Match B", date),
		testEvent("c", "No Match C", date),
	}
	artists := []models.Artist{
		{Name: "Someone Else", Popularity: 90},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].EventID)
	assert.Equal(t, "b", ranked[1].EventID)
	assert.Equal(t, "c", ranked[2].EventID)
}

func TestRankIsPermutation(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("event1", "Arijit Singh", base),
		testEvent("event2", "Neha Kakkar", base.Add(24*time.Hour)),
		testEvent("event3", "Badshah", base.Add(48*time.Hour)),
		testEvent("event4", "A.R. Rahman", base.Add(72*time.Hour)),
	}
	artists := []models.Artist{
		{Name: "Badshah", Popularity: 85},
		{Name: "AR Rahman", Popularity: 95},
	}

	ranked := Rank(events, artists)

	require.Len(t, ranked, len(events))

	seen := make(map[string]bool, len(events))
	for _, re := range ranked {
		seen[re.EventID] = true
	}
	for _, e := range events {
		assert.True(t, seen[e.EventID], "event %s missing from output", e.EventID)
	}
}

func TestRankIdempotent(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("event1", "Arijit Singh", base),
		testEvent("event2", "Neha Kakkar", base.Add(24*time.Hour)),
		testEvent("event3", "Badshah", base.Add(48*time.Hour)),
	}
	artists := []models.Artist{
		{Name: "Neha Kakkar", Popularity: 80},
		{Name: "Arijit Singh", Popularity: 90},
	}

	first := Rank(events, artists)
	second := Rank(events, artists)

	assert.Equal(t, first, second)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	events := []models.Event{
		testEvent("event1", "Badshah", base.Add(24*time.Hour)),
		testEvent("event2", "Arijit Singh", base),
	}
	original := make([]models.Event, len(events))
	copy(original, events)

	artists := []models.Artist{
		{Name: "Arijit Singh", Popularity: 90},
	}

	Rank(events, artists)

	assert.Equal(t, original, events, "input slice must not be reordered or modified")
}
