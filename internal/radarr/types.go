package radarr

import "encoding/json"

// Movie covers the fields this tool reads from Radarr's movie listing
// and lookup responses, plus the fields an add request must carry.
// Images and Ratings pass through lookup untouched so the add request
// keeps whatever Radarr returned.
type Movie struct {
	ID                  int             `json:"id,omitempty"`
	Title               string          `json:"title,omitempty"`
	OriginalTitle       string          `json:"originalTitle,omitempty"`
	TitleSlug           string          `json:"titleSlug,omitempty"`
	Year                int             `json:"year,omitempty"`
	TMDBID              int             `json:"tmdbId,omitempty"`
	IMDBID              string          `json:"imdbId,omitempty"`
	Images              json.RawMessage `json:"images,omitempty"`
	Ratings             json.RawMessage `json:"ratings,omitempty"`
	QualityProfileID    int             `json:"qualityProfileId,omitempty"`
	RootFolderPath      string          `json:"rootFolderPath,omitempty"`
	Monitored           bool            `json:"monitored"`
	MinimumAvailability string          `json:"minimumAvailability,omitempty"`
	Tags                []int           `json:"tags,omitempty"`
	AddOptions          *AddOptions     `json:"addOptions,omitempty"`
}

// AddOptions controls what Radarr does right after an add.
type AddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// RootFolder is one configured library path.
type RootFolder struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// QualityProfile is a named quality profile.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Tag is a user-defined label.
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}
