// Package ranking orders events by how well they match a listener's taste.
package ranking

import (
	"math"
	"sort"
	"strings"

	"showtix/internal/models"
)

// Weighting of the combined relevance score: position in the listener's
// top-artists list counts for more than the artist's general popularity.
const (
	positionWeight   = 0.7
	popularityWeight = 0.3
	positionPenalty  = 5
)

// Rank scores every event against the listener's top artists and returns a
// new slice ordered by descending relevance, ties broken by ascending date.
// The input slice is never modified.
//
// With an empty preference list the input order is preserved and every score
// is zero.
func Rank(events []models.Event, artists []models.Artist) []models.RankedEvent {
	ranked := make([]models.RankedEvent, len(events))
	for i, event := range events {
		ranked[i] = models.RankedEvent{
			Event:              event,
			UserRelevanceScore: relevance(event, artists),
		}
	}

	if len(artists) == 0 {
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].UserRelevanceScore != ranked[j].UserRelevanceScore {
			return ranked[i].UserRelevanceScore > ranked[j].UserRelevanceScore
		}
		return ranked[i].Date.Before(ranked[j].Date)
	})

	return ranked
}

// relevance finds the first preference entry matching the event's artist and
// combines its list position with its popularity into a 0-100 score.
func relevance(event models.Event, artists []models.Artist) int {
	eventArtist := strings.ToLower(event.ArtistName)

	for i, artist := range artists {
		prefArtist := strings.ToLower(artist.Name)

		// Loose bidirectional substring match, tolerating naming
		// variants such as "A.R. Rahman" vs "AR Rahman".
		if !strings.Contains(eventArtist, prefArtist) && !strings.Contains(prefArtist, eventArtist) {
			continue
		}

		positionScore := 100 - positionPenalty*i
		if positionScore < 0 {
			positionScore = 0
		}

		score := positionWeight*float64(positionScore) + popularityWeight*float64(artist.Popularity)

		return int(math.Round(score))
	}

	return 0
}
