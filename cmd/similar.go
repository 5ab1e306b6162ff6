package cmd

import (
	"fmt"
	"io"

	"github.com/jfmyers9/playlie/pkg/lastfm"
	"github.com/spf13/cobra"
)

// similarCmd represents the similar command
var similarCmd = &cobra.Command{
	Use:   "similar <artist> <track>",
	Short: "List tracks similar to a track",
	Long: `Query Last.fm for tracks similar to the given artist and track,
printing one "Artist - Track" line per result in Last.fm's order.

Arguments are sent as-is, so names with spaces or other reserved
characters must already be URL-encoded (for example "daft+punk").`,
	Args: cobra.ExactArgs(2),
	RunE: runSimilar,
}

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().IntP("width", "w", 0, "Fixed output width (0=disabled, overrides config)")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.OutputWidth
	}

	client := newClient(cfg, logger)

	tracks, err := client.Track().GetSimilar(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to fetch similar tracks: %w", err)
	}

	logger.Info().Int("tracks", len(tracks)).Msg("Fetched similar tracks")

	return printSimilar(cmd.OutOrStdout(), tracks, width)
}

// printSimilar writes one formatted line per similar track
func printSimilar(w io.Writer, tracks []lastfm.SimilarTrack, width int) error {
	for _, track := range tracks {
		if _, err := fmt.Fprintln(w, padToWidth(formatSimilar(track), width)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
