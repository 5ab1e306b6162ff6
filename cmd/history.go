package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/playlie/internal/config"
	"github.com/jfmyers9/playlie/internal/history"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded recommendations",
	Long: `List playlist items recorded with 'playlie --record', newest first.

Each line shows when the playlist was fetched, for which user, and the
track in the same "Artist - Track" form as the main command.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of items to show (0=all)")
	historyCmd.Flags().Duration("prune", 0, "Delete items older than this age before listing (e.g. 720h)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(logFile, logLevel)

	// History is local, so no API key is required
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := cfg.HistoryDB()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet. Run 'playlie --record' first.")
		return nil
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	prune, _ := cmd.Flags().GetDuration("prune")
	if prune > 0 {
		deleted, err := store.Cleanup(cmd.Context(), prune)
		if err != nil {
			return err
		}
		logger.Info().Int64("deleted", deleted).Dur("max_age", prune).Msg("Pruned history")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	return printHistory(cmd.OutOrStdout(), entries)
}

// printHistory writes one line per recorded item
func printHistory(w io.Writer, entries []history.Entry) error {
	for _, e := range entries {
		line := strings.Join(e.Artists, " & ") + " - " + e.TrackName
		if _, err := fmt.Fprintf(w, "%s %s %s\n", e.FetchedAt.Format(time.RFC3339), e.User, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
