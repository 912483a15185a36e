// Package spotify is the client for the listening-preference source. It only
// reads data; token issuance and refresh belong to the session layer.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"showtix/internal/config"
	"showtix/internal/models"
)

// emailFallback replaces an email the preference source did not share.
const emailFallback = "N/A"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Spotify) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// TopArtists returns the listener's artists, most preferred first.
func (c *Client) TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error) {
	var payload struct {
		Items []models.Artist `json:"items"`
	}

	if err := c.get(ctx, "/me/top/artists", accessToken, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch top artists: %w", err)
	}

	return payload.Items, nil
}

// TopTracks returns the listener's tracks, most preferred first.
func (c *Client) TopTracks(ctx context.Context, accessToken string) ([]models.Track, error) {
	var payload struct {
		Items []struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			Popularity int    `json:"popularity"`
			Artists    []struct {
				Name string `json:"name"`
			} `json:"artists"`
		} `json:"items"`
	}

	if err := c.get(ctx, "/me/top/tracks", accessToken, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch top tracks: %w", err)
	}

	tracks := make([]models.Track, len(payload.Items))
	for i, item := range payload.Items {
		track := models.Track{
			ID:         item.ID,
			Name:       item.Name,
			Popularity: item.Popularity,
		}
		for _, artist := range item.Artists {
			track.Artists = append(track.Artists, artist.Name)
		}
		tracks[i] = track
	}

	return tracks, nil
}

// Profile returns the listener's account. A missing email is resolved to the
// fallback value here so callers never handle absence themselves.
func (c *Client) Profile(ctx context.Context, accessToken string) (*models.Profile, error) {
	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	if err := c.get(ctx, "/me", accessToken, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	profile := &models.Profile{
		ID:    payload.ID,
		Email: payload.Email,
	}
	if profile.Email == "" {
		profile.Email = emailFallback
	}

	return profile, nil
}

func (c *Client) get(ctx context.Context, path, accessToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
