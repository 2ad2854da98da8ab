package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds every setting the pipeline needs, before any Radarr-side
// resolution happens. Values come from defaults, then an optional ini
// file, then the environment. CLI flags override on top (see cmd).
type Config struct {
	TMDBAPIKey   string
	RadarrURL    string
	RadarrAPIKey string

	// TMDb discovery filters
	Language     string
	GenreIDs     string
	MinVoteAvg   float64
	MinVoteCount int
	YearFrom     int
	YearTo       int
	MaxPages     int

	// Radarr add behavior
	RootFolder          string
	QualityProfile      string
	Tags                string
	Monitored           bool
	SearchOnAdd         bool
	MinimumAvailability string
}

// Defaults returns the built-in filter defaults.
func Defaults() Config {
	return Config{
		Language:            "ko",
		GenreIDs:            "27,53",
		MinVoteAvg:          7.0,
		MinVoteCount:        150,
		YearFrom:            2000,
		YearTo:              time.Now().UTC().Year(),
		MaxPages:            3,
		Monitored:           true,
		SearchOnAdd:         true,
		MinimumAvailability: "released",
	}
}

// Load builds a Config from defaults, an optional ini file and the
// environment (a .env file is picked up if present). Required
// credentials are validated here, before any network call.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if cfg.TMDBAPIKey == "" {
		return cfg, fmt.Errorf("missing required setting: TMDB_API_KEY")
	}
	if cfg.RadarrURL == "" {
		return cfg, fmt.Errorf("missing required setting: RADARR_URL")
	}
	if cfg.RadarrAPIKey == "" {
		return cfg, fmt.Errorf("missing required setting: RADARR_API_KEY")
	}
	cfg.RadarrURL = strings.TrimRight(cfg.RadarrURL, "/")

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	tmdb := f.Section("tmdb")
	setString(&c.TMDBAPIKey, tmdb.Key("api_key").String())
	setString(&c.Language, tmdb.Key("original_language").String())
	setString(&c.GenreIDs, tmdb.Key("include_genre_ids").String())

	radarr := f.Section("radarr")
	setString(&c.RadarrURL, radarr.Key("url").String())
	setString(&c.RadarrAPIKey, radarr.Key("api_key").String())
	setString(&c.RootFolder, radarr.Key("root_folder").String())
	setString(&c.QualityProfile, radarr.Key("quality_profile").String())
	setString(&c.Tags, radarr.Key("tags").String())
	setString(&c.MinimumAvailability, radarr.Key("minimum_availability").String())

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.TMDBAPIKey, os.Getenv("TMDB_API_KEY"))
	setString(&c.RadarrURL, os.Getenv("RADARR_URL"))
	setString(&c.RadarrAPIKey, os.Getenv("RADARR_API_KEY"))

	setString(&c.Language, os.Getenv("ORIGINAL_LANGUAGE"))
	setString(&c.GenreIDs, os.Getenv("INCLUDE_GENRE_IDS"))
	if err := setFloat(&c.MinVoteAvg, "MIN_VOTE_AVG"); err != nil {
		return err
	}
	if err := setInt(&c.MinVoteCount, "MIN_VOTE_COUNT"); err != nil {
		return err
	}
	if err := setInt(&c.YearFrom, "YEAR_FROM"); err != nil {
		return err
	}
	if err := setInt(&c.YearTo, "YEAR_TO"); err != nil {
		return err
	}
	if err := setInt(&c.MaxPages, "MAX_PAGES"); err != nil {
		return err
	}

	setString(&c.RootFolder, os.Getenv("RADARR_ROOT_FOLDER"))
	setString(&c.QualityProfile, os.Getenv("RADARR_QUALITY_PROFILE"))
	setString(&c.Tags, os.Getenv("RADARR_TAGS"))
	if err := setBool(&c.Monitored, "MONITORED"); err != nil {
		return err
	}
	if err := setBool(&c.SearchOnAdd, "SEARCH_ON_ADD"); err != nil {
		return err
	}
	setString(&c.MinimumAvailability, os.Getenv("MINIMUM_AVAILABILITY"))

	return nil
}

func setString(dst *string, v string) {
	v = strings.TrimSpace(v)
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, name string) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, name string) error {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = b
	return nil
}
