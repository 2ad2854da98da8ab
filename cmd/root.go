package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"discoverarr/internal/config"
	"discoverarr/internal/importer"
	"discoverarr/internal/radarr"
	"discoverarr/internal/tmdb"
)

var (
	cfgFile string
	flags   = config.Defaults()
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "discoverarr",
	Short: "Discover movies on TMDb and add the untracked ones to Radarr",
	Long: `discoverarr pages through TMDb's discovery endpoint with configurable
filters (original language, genres, vote thresholds, release-year
window), drops everything Radarr already tracks, and adds the rest via
Radarr's lookup/add API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiscover(cmd)
	},
}

// Execute runs the root command. Any error becomes one line on stderr
// and exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to optional ini config file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be added without adding anything")

	rootCmd.Flags().StringVar(&flags.Language, "lang", flags.Language, "TMDb original language code")
	rootCmd.Flags().StringVar(&flags.GenreIDs, "genres", flags.GenreIDs, "TMDb genre IDs, comma-separated")
	rootCmd.Flags().Float64Var(&flags.MinVoteAvg, "min-vote-avg", flags.MinVoteAvg, "minimum TMDb vote average")
	rootCmd.Flags().IntVar(&flags.MinVoteCount, "min-vote-count", flags.MinVoteCount, "minimum TMDb vote count")
	rootCmd.Flags().IntVar(&flags.YearFrom, "year-from", flags.YearFrom, "earliest primary release year")
	rootCmd.Flags().IntVar(&flags.YearTo, "year-to", flags.YearTo, "latest primary release year")
	rootCmd.Flags().IntVar(&flags.MaxPages, "max-pages", flags.MaxPages, "maximum discovery pages to fetch")

	rootCmd.Flags().StringVar(&flags.RootFolder, "root-folder", "", "Radarr root folder path (default: first configured)")
	rootCmd.Flags().StringVar(&flags.QualityProfile, "quality-profile", "", "Radarr quality profile name or ID (default: first profile)")
	rootCmd.Flags().StringVar(&flags.Tags, "tags", "", "comma-separated Radarr tag names or IDs")
	rootCmd.Flags().BoolVar(&flags.Monitored, "monitored", flags.Monitored, "add movies as monitored")
	rootCmd.Flags().BoolVar(&flags.SearchOnAdd, "search-on-add", flags.SearchOnAdd, "trigger a search right after adding")
	rootCmd.Flags().StringVar(&flags.MinimumAvailability, "minimum-availability", flags.MinimumAvailability, "Radarr minimum availability setting")
}

// applyFlags copies every flag the user set on the command line over
// the loaded config. Flags win over env and file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("lang", func() { cfg.Language = flags.Language })
	set("genres", func() { cfg.GenreIDs = flags.GenreIDs })
	set("min-vote-avg", func() { cfg.MinVoteAvg = flags.MinVoteAvg })
	set("min-vote-count", func() { cfg.MinVoteCount = flags.MinVoteCount })
	set("year-from", func() { cfg.YearFrom = flags.YearFrom })
	set("year-to", func() { cfg.YearTo = flags.YearTo })
	set("max-pages", func() { cfg.MaxPages = flags.MaxPages })
	set("root-folder", func() { cfg.RootFolder = flags.RootFolder })
	set("quality-profile", func() { cfg.QualityProfile = flags.QualityProfile })
	set("tags", func() { cfg.Tags = flags.Tags })
	set("monitored", func() { cfg.Monitored = flags.Monitored })
	set("search-on-add", func() { cfg.SearchOnAdd = flags.SearchOnAdd })
	set("minimum-availability", func() { cfg.MinimumAvailability = flags.MinimumAvailability })
}

func runDiscover(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	ctx := context.Background()
	lib := radarr.NewClient(cfg.RadarrURL, cfg.RadarrAPIKey)
	catalog := tmdb.NewClient(cfg.TMDBAPIKey)

	fmt.Printf("Run %s\n", uuid.New().String())

	fmt.Println("--- Resolving Radarr references ---")

	rc := importer.Resolved{
		Monitored:           cfg.Monitored,
		SearchOnAdd:         cfg.SearchOnAdd,
		MinimumAvailability: cfg.MinimumAvailability,
		DryRun:              dryRun,
	}
	rc.RootFolder, err = importer.ResolveRootFolder(ctx, lib, cfg.RootFolder)
	if err != nil {
		return err
	}
	rc.QualityProfileID, err = importer.ResolveQualityProfile(ctx, lib, cfg.QualityProfile)
	if err != nil {
		return err
	}
	rc.TagIDs, err = importer.ResolveTags(ctx, lib, cfg.Tags)
	if err != nil {
		return err
	}

	fmt.Printf("Radarr root folder: %s\n", rc.RootFolder)
	fmt.Printf("Radarr qualityProfileId: %d\n", rc.QualityProfileID)
	if len(rc.TagIDs) > 0 {
		fmt.Printf("Radarr tags: %v\n", rc.TagIDs)
	} else {
		fmt.Println("Radarr tags: none")
	}
	fmt.Printf("Dry run: %t\n\n", rc.DryRun)

	existing, err := importer.ExistingTMDBIDs(ctx, lib)
	if err != nil {
		return err
	}
	fmt.Printf("Radarr currently has %d movies with tmdbId.\n\n", len(existing))

	fmt.Println("--- Discovering TMDb candidates ---")

	candidates, err := catalog.DiscoverMovies(ctx, tmdb.DiscoverFilter{
		OriginalLanguage: cfg.Language,
		GenreIDs:         cfg.GenreIDs,
		MinVoteAverage:   cfg.MinVoteAvg,
		MinVoteCount:     cfg.MinVoteCount,
		YearFrom:         cfg.YearFrom,
		YearTo:           cfg.YearTo,
		MaxPages:         cfg.MaxPages,
	})
	if err != nil {
		return err
	}
	fmt.Printf("TMDb candidates fetched: %d\n", len(candidates))

	plan := importer.BuildPlan(candidates, existing)
	fmt.Printf("Movies to add: %d\n\n", len(plan))

	return importer.Execute(ctx, lib, plan, rc, os.Stdout)
}
