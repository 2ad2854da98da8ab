package importer

import (
	"context"
	"fmt"
	"io"

	"discoverarr/internal/radarr"
)

// Execute walks the add plan in order. In dry-run mode it only prints
// what would happen; otherwise each entry is looked up in Radarr and
// added with the resolved settings. The first failure aborts the
// remaining entries.
func Execute(ctx context.Context, lib Library, plan []PlanEntry, rc Resolved, out io.Writer) error {
	for _, e := range plan {
		fmt.Fprintf(out, "%s | %s | tmdbId=%d\n", e.ReleaseDate, e.Title, e.TMDBID)

		if rc.DryRun {
			fmt.Fprintf(out, "[DRY_RUN] Would add: %s (%d) tmdbId=%d\n", e.Title, e.Year, e.TMDBID)
			continue
		}

		if err := addOne(ctx, lib, e, rc, out); err != nil {
			return err
		}
	}
	return nil
}

func addOne(ctx context.Context, lib Library, e PlanEntry, rc Resolved, out io.Writer) error {
	looked, err := lib.LookupByTMDBID(ctx, e.TMDBID)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", e.Title, err)
	}

	m := *looked
	m.ID = 0 // lookup records carry no library id; never send one
	m.RootFolderPath = rc.RootFolder
	m.QualityProfileID = rc.QualityProfileID
	m.Monitored = rc.Monitored
	m.MinimumAvailability = rc.MinimumAvailability
	if len(rc.TagIDs) > 0 {
		m.Tags = rc.TagIDs
	}
	m.AddOptions = &radarr.AddOptions{SearchForMovie: rc.SearchOnAdd}

	created, err := lib.AddMovie(ctx, m)
	if err != nil {
		return fmt.Errorf("add %s: %w", e.Title, err)
	}

	// Prefer Radarr's view of the record, fall back to what we knew.
	title, year, tmdbID := created.Title, created.Year, created.TMDBID
	if title == "" {
		title = e.Title
	}
	if year == 0 {
		year = e.Year
	}
	if tmdbID == 0 {
		tmdbID = e.TMDBID
	}
	fmt.Fprintf(out, "Added: %s (%d) tmdbId=%d\n", title, year, tmdbID)
	return nil
}
