package models

// Artist is one entry of a listener's top-artists list as returned by the
// preference source. Preference rank is the entry's position in that list,
// 0 being the most preferred.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Popularity int      `json:"popularity"`
	Genres     []string `json:"genres,omitempty"`
}

// Track is one entry of a listener's top-tracks list.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Popularity int      `json:"popularity"`
	Artists    []string `json:"artists,omitempty"`
}

// Profile is the listener's account as reported by the preference source.
// Email is optional upstream; it is resolved to a fallback at the client
// boundary so the rest of the code never checks for absence.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
