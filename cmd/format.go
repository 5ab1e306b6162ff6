package cmd

import (
	"strings"

	"github.com/jfmyers9/playlie/pkg/lastfm"
	"github.com/mattn/go-runewidth"
)

// formatItem renders a playlist item as "artist1 & artist2 - name"
func formatItem(item lastfm.PlaylistItem) string {
	return strings.Join(item.ArtistNames(), " & ") + " - " + item.Name
}

// formatSimilar renders a similar track as "artist - name"
func formatSimilar(track lastfm.SimilarTrack) string {
	return track.Artist.Name + " - " + track.Name
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		truncated := runewidth.Truncate(text, width-ellipsisWidth, "")
		result := truncated + ellipsis

		// Wide runes can leave truncation one column short
		if resultWidth := runewidth.StringWidth(result); resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	} else if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
