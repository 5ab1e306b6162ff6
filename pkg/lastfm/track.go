package lastfm

import (
	"context"
)

// TrackService provides track operations for the Last.fm API.
type TrackService struct {
	client *Client
}

// GetSimilar returns tracks similar to the given track, in the order
// returned by Last.fm.
//
// The artist and track names are placed in the query string as-is and
// must already be URL-safe (for example "cher" and "believe", or
// pre-encoded with url.QueryEscape).
//
// Example:
//
//	tracks, err := client.Track().GetSimilar(ctx, "cher", "believe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range tracks {
//	    fmt.Println(t.Artist.Name, "-", t.Name)
//	}
func (t *TrackService) GetSimilar(ctx context.Context, artist, track string) ([]SimilarTrack, error) {
	var resp SimilarTracks
	u := t.client.similarTracksURL(artist, track)
	if err := t.client.get(ctx, "track.getsimilar", u, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

func (c *Client) similarTracksURL(artist, track string) string {
	return c.apiURL("track.getsimilar", "artist", artist, "track", track)
}
