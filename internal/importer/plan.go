package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"discoverarr/internal/tmdb"
)

// ExistingTMDBIDs fetches the library snapshot and collects every
// positive tmdb id into a membership set. Movies without one are
// ignored.
func ExistingTMDBIDs(ctx context.Context, lib Library) (map[int]struct{}, error) {
	movies, err := lib.GetMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	ids := make(map[int]struct{}, len(movies))
	for _, m := range movies {
		if m.TMDBID > 0 {
			ids[m.TMDBID] = struct{}{}
		}
	}
	return ids, nil
}

// BuildPlan turns discovered candidates into an ordered add plan.
// Candidates are kept in arrival order; the first occurrence of a tmdb
// id wins, and ids already in the existing set are dropped.
func BuildPlan(candidates []tmdb.Movie, existing map[int]struct{}) []PlanEntry {
	seen := make(map[int]struct{}, len(candidates))
	plan := make([]PlanEntry, 0, len(candidates))

	for _, m := range candidates {
		if m.ID <= 0 {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}

		if _, ok := existing[m.ID]; ok {
			continue
		}

		title := m.Title
		if title == "" {
			title = m.OriginalTitle
		}
		if title == "" {
			title = fmt.Sprintf("tmdb:%d", m.ID)
		}

		releaseDate := m.ReleaseDate
		if releaseDate == "" {
			releaseDate = UnknownDate
		}

		plan = append(plan, PlanEntry{
			TMDBID:      m.ID,
			Title:       title,
			Year:        ParseYear(m.ReleaseDate),
			ReleaseDate: releaseDate,
		})
	}

	return plan
}

// ParseYear extracts the leading 4-digit year from an ISO-ish date
// string. Returns 0 when there is none.
func ParseYear(date string) int {
	if date == "" {
		return 0
	}
	y, _, _ := strings.Cut(date, "-")
	n, err := strconv.Atoi(y)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
