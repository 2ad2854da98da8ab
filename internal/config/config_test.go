package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("RADARR_URL", "http://radarr:7878/")
	t.Setenv("RADARR_API_KEY", "radarr-key")
}

func clearFilterEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ORIGINAL_LANGUAGE", "INCLUDE_GENRE_IDS", "MIN_VOTE_AVG",
		"MIN_VOTE_COUNT", "YEAR_FROM", "YEAR_TO", "MAX_PAGES",
		"RADARR_ROOT_FOLDER", "RADARR_QUALITY_PROFILE", "RADARR_TAGS",
		"MONITORED", "SEARCH_ON_ADD", "MINIMUM_AVAILABILITY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)
	clearFilterEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://radarr:7878", cfg.RadarrURL, "trailing slash trimmed")
	assert.Equal(t, "ko", cfg.Language)
	assert.Equal(t, "27,53", cfg.GenreIDs)
	assert.Equal(t, 7.0, cfg.MinVoteAvg)
	assert.Equal(t, 150, cfg.MinVoteCount)
	assert.Equal(t, 2000, cfg.YearFrom)
	assert.Equal(t, time.Now().UTC().Year(), cfg.YearTo)
	assert.Equal(t, 3, cfg.MaxPages)
	assert.True(t, cfg.Monitored)
	assert.True(t, cfg.SearchOnAdd)
	assert.Equal(t, "released", cfg.MinimumAvailability)
}

func TestLoadEnvOverrides(t *testing.T) {
	setCredentials(t)
	clearFilterEnv(t)
	t.Setenv("ORIGINAL_LANGUAGE", "ja")
	t.Setenv("MIN_VOTE_AVG", "6.5")
	t.Setenv("MAX_PAGES", "5")
	t.Setenv("MONITORED", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, 6.5, cfg.MinVoteAvg)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.False(t, cfg.Monitored)
}

func TestLoadMissingCredentials(t *testing.T) {
	clearFilterEnv(t)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("RADARR_URL", "")
	t.Setenv("RADARR_API_KEY", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB_API_KEY")
}

func TestLoadInvalidNumber(t *testing.T) {
	setCredentials(t)
	clearFilterEnv(t)
	t.Setenv("MAX_PAGES", "lots")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_PAGES")
}

func TestLoadIniFileWithEnvPrecedence(t *testing.T) {
	clearFilterEnv(t)
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("RADARR_URL", "")
	t.Setenv("RADARR_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(`
[tmdb]
api_key = file-tmdb-key
original_language = th

[radarr]
url = http://file-radarr:7878
api_key = file-key
quality_profile = HD-1080p
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-tmdb-key", cfg.TMDBAPIKey)
	assert.Equal(t, "th", cfg.Language)
	assert.Equal(t, "http://file-radarr:7878", cfg.RadarrURL)
	assert.Equal(t, "env-key", cfg.RadarrAPIKey, "env wins over the file")
	assert.Equal(t, "HD-1080p", cfg.QualityProfile)
}
