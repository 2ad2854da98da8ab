package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// DiscoverMovies pages through /discover/movie with the given filters,
// newest primary release date first. Pagination stops on an empty
// page, when the reported total page count is reached, or at
// f.MaxPages, whichever comes first.
func (c *Client) DiscoverMovies(ctx context.Context, f DiscoverFilter) ([]Movie, error) {
	var all []Movie

	for page := 1; page <= f.MaxPages; page++ {
		data, err := c.discoverPage(ctx, f, page)
		if err != nil {
			return nil, fmt.Errorf("discover page %d: %w", page, err)
		}

		if len(data.Results) == 0 {
			break
		}
		all = append(all, data.Results...)

		totalPages := data.TotalPages
		if totalPages == 0 {
			totalPages = page
		}
		if page >= totalPages {
			break
		}
	}

	return all, nil
}

func (c *Client) discoverPage(ctx context.Context, f DiscoverFilter, page int) (*DiscoverPage, error) {
	params := url.Values{}
	params.Set("sort_by", "primary_release_date.desc")
	params.Set("include_adult", "false")
	params.Set("include_video", "false")
	params.Set("page", strconv.Itoa(page))
	if f.OriginalLanguage != "" {
		params.Set("with_original_language", f.OriginalLanguage)
	}
	if f.GenreIDs != "" {
		params.Set("with_genres", f.GenreIDs)
	}
	params.Set("vote_average.gte", strconv.FormatFloat(f.MinVoteAverage, 'f', -1, 64))
	params.Set("vote_count.gte", strconv.Itoa(f.MinVoteCount))
	// Year bounds expand to the full calendar years.
	params.Set("primary_release_date.gte", fmt.Sprintf("%04d-01-01", f.YearFrom))
	params.Set("primary_release_date.lte", fmt.Sprintf("%04d-12-31", f.YearTo))

	var data DiscoverPage
	if err := c.doJSON(ctx, "/discover/movie", params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
