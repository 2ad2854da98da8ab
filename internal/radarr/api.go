package radarr

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetMovies lists every movie Radarr currently tracks.
func (c *Client) GetMovies(ctx context.Context) ([]Movie, error) {
	var list []Movie
	if err := c.doJSON(ctx, http.MethodGet, "/movie", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetRootFolders lists the configured library root folders.
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var list []RootFolder
	if err := c.doJSON(ctx, http.MethodGet, "/rootfolder", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetQualityProfiles lists the configured quality profiles.
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var list []QualityProfile
	if err := c.doJSON(ctx, http.MethodGet, "/qualityprofile", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetTags lists the existing tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var list []Tag
	if err := c.doJSON(ctx, http.MethodGet, "/tag", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateTag creates a tag with the given label and returns it.
func (c *Client) CreateTag(ctx context.Context, label string) (Tag, error) {
	body := Tag{Label: label}
	var created Tag
	if err := c.doJSON(ctx, http.MethodPost, "/tag", nil, body, &created); err != nil {
		return Tag{}, err
	}
	return created, nil
}

// LookupByTMDBID fetches the definitive movie record for a TMDb id via
// Radarr's lookup endpoint. Returns ErrNotFound when the lookup comes
// back empty.
func (c *Client) LookupByTMDBID(ctx context.Context, tmdbID int) (*Movie, error) {
	params := url.Values{}
	params.Set("term", fmt.Sprintf("tmdb:%d", tmdbID))

	var results []Movie
	if err := c.doJSON(ctx, http.MethodGet, "/movie/lookup", params, nil, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("lookup tmdb:%d: %w", tmdbID, ErrNotFound)
	}
	return &results[0], nil
}

// AddMovie registers a movie and returns Radarr's record of it.
func (c *Client) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	var created Movie
	if err := c.doJSON(ctx, http.MethodPost, "/movie", nil, m, &created); err != nil {
		return Movie{}, err
	}
	return created, nil
}
