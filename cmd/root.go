/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfmyers9/playlie/internal/config"
	"github.com/jfmyers9/playlie/internal/history"
	"github.com/jfmyers9/playlie/pkg/lastfm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	logFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playlie",
	Short: "Print a Last.fm user's recommended playlist",
	Long: `playlie prints the recommended station playlist of a Last.fm user,
one line per track:

  Artist One & Artist Two - Track Name

The Last.fm API key is read from LASTFM_API_KEY (or a .env file, or
lastfm.api_key in ~/.config/playlie/config.yaml). The user defaults to
"sebnow" and can be changed with --user or PLAYLIE_USER.

Use --record to keep a log of fetched playlists, and 'playlie history'
to view it.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRecommended,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Cancel in-flight requests on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringP("user", "u", "", "Last.fm user (overrides config)")
	rootCmd.Flags().IntP("width", "w", 0, "Fixed output width (0=disabled, overrides config)")
	rootCmd.Flags().Bool("record", false, "Record the fetched playlist in the history database")
}

func runRecommended(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = cfg.User
	}

	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.OutputWidth
	}

	client := newClient(cfg, logger)

	logger.Info().Str("user", user).Msg("Fetching recommended playlist")

	playlist, err := client.User().Recommended(cmd.Context(), user)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations for %s: %w", user, err)
	}

	logger.Info().Int("items", len(playlist.Items)).Msg("Fetched recommended playlist")

	if err := printPlaylist(cmd.OutOrStdout(), playlist, width); err != nil {
		return err
	}

	record, _ := cmd.Flags().GetBool("record")
	if record {
		if err := recordPlaylist(cmd.Context(), cfg, user, playlist, logger); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig loads and validates configuration and builds the logger
func loadConfig() (*config.Config, zerolog.Logger, error) {
	logger := setupLogger(logFile, logLevel)

	cfg, err := config.Load()
	if err != nil {
		return nil, logger, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, logger, err
	}

	return cfg, logger, nil
}

// newClient creates a Last.fm client from configuration
func newClient(cfg *config.Config, logger zerolog.Logger) *lastfm.Client {
	return lastfm.NewClient(lastfm.Config{
		APIKey:     cfg.LastFM.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		UserAgent:  "playlie/" + version,
		Logger:     lastfmLogger{logger: logger.With().Str("component", "lastfm").Logger()},
	})
}

// printPlaylist writes one formatted line per playlist item
func printPlaylist(w io.Writer, playlist *lastfm.Playlist, width int) error {
	for _, item := range playlist.Items {
		if _, err := fmt.Fprintln(w, padToWidth(formatItem(item), width)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// recordPlaylist appends the playlist to the history database
func recordPlaylist(ctx context.Context, cfg *config.Config, user string, playlist *lastfm.Playlist, logger zerolog.Logger) error {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := history.Open(cfg.HistoryDB())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	runID, err := store.Record(ctx, user, playlist.Items)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}

	logger.Debug().
		Str("run_id", runID).
		Str("db", cfg.HistoryDB()).
		Int("items", len(playlist.Items)).
		Msg("Recorded playlist")

	return nil
}
