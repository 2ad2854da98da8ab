package tmdb

// Movie is a single entry in a discover result page.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	ReleaseDate      string  `json:"release_date"`
	GenreIDs         []int   `json:"genre_ids"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Overview         string  `json:"overview"`
}

// DiscoverPage is the response shape of /discover/movie.
type DiscoverPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// DiscoverFilter carries the query filters for paginated discovery.
// GenreIDs is passed through verbatim as TMDb's comma-separated list.
type DiscoverFilter struct {
	OriginalLanguage string
	GenreIDs         string
	MinVoteAverage   float64
	MinVoteCount     int
	YearFrom         int
	YearTo           int
	MaxPages         int
}

type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
