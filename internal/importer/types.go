package importer

import (
	"context"

	"discoverarr/internal/radarr"
)

// Library is the slice of the Radarr API the pipeline needs. The
// concrete radarr.Client satisfies it; tests substitute fakes.
type Library interface {
	GetMovies(ctx context.Context) ([]radarr.Movie, error)
	GetRootFolders(ctx context.Context) ([]radarr.RootFolder, error)
	GetQualityProfiles(ctx context.Context) ([]radarr.QualityProfile, error)
	GetTags(ctx context.Context) ([]radarr.Tag, error)
	CreateTag(ctx context.Context, label string) (radarr.Tag, error)
	LookupByTMDBID(ctx context.Context, tmdbID int) (*radarr.Movie, error)
	AddMovie(ctx context.Context, m radarr.Movie) (radarr.Movie, error)
}

// Resolved is the per-run add configuration after every Radarr
// reference has been resolved. Immutable once built.
type Resolved struct {
	RootFolder          string
	QualityProfileID    int
	TagIDs              []int
	Monitored           bool
	SearchOnAdd         bool
	MinimumAvailability string
	DryRun              bool
}

// PlanEntry is one movie scheduled for adding. Year is 0 when the
// release date carries no usable year.
type PlanEntry struct {
	TMDBID      int
	Title       string
	Year        int
	ReleaseDate string
}

// UnknownDate is displayed when a candidate has no release date.
const UnknownDate = "????-??-??"
