package ranking

import (
	"math"

	"showtix/internal/models"
)

// FanScore summarizes how engaged a listener is, weighted by list position:
// entries near the top of the top-artists and top-tracks lists dominate.
// Artists contribute at twice the weight of tracks. The score is open-ended;
// with the usual 20-entry lists it stays in the low hundreds.
func FanScore(artists []models.Artist, tracks []models.Track) int {
	var score float64

	for i, artist := range artists {
		score += float64(artist.Popularity) * float64(20-i) / 10
	}

	for i, track := range tracks {
		score += float64(track.Popularity) * float64(20-i) / 20
	}

	return int(math.Round(score))
}
