package lastfm

import (
	"encoding/json"
)

// Artist is a credited artist. Only the name is decoded; mbid, url and
// other wire fields are ignored.
type Artist struct {
	Name string `json:"name"`
}

// SimilarTrack is one entry of a track.getSimilar response.
type SimilarTrack struct {
	Name   string `json:"name"`
	Artist Artist `json:"artist"`
}

// SimilarTracks is the track.getSimilar response envelope:
//
//	{"similartracks": {"track": [...]}}
type SimilarTracks struct {
	Tracks []SimilarTrack `json:"track"`
}

// PlaylistItem is a single track of a recommended playlist.
type PlaylistItem struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// Playlist is a station playlist from the Last.fm website.
type Playlist struct {
	Items []PlaylistItem `json:"playlist"`
}

// UnmarshalJSON decodes an artist, requiring name.
func (a *Artist) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Name == nil {
		return &MissingFieldError{Object: "artist", Field: "name"}
	}
	a.Name = *wire.Name
	return nil
}

// UnmarshalJSON decodes a similar track, requiring name and artist.
func (t *SimilarTrack) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name   *string `json:"name"`
		Artist *Artist `json:"artist"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Name == nil {
		return &MissingFieldError{Object: "track", Field: "name"}
	}
	if wire.Artist == nil {
		return &MissingFieldError{Object: "track", Field: "artist"}
	}
	t.Name = *wire.Name
	t.Artist = *wire.Artist
	return nil
}

// UnmarshalJSON unwraps the similartracks envelope.
func (s *SimilarTracks) UnmarshalJSON(data []byte) error {
	var wire struct {
		SimilarTracks *struct {
			Track *[]SimilarTrack `json:"track"`
		} `json:"similartracks"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.SimilarTracks == nil {
		return &MissingFieldError{Object: "response", Field: "similartracks"}
	}
	if wire.SimilarTracks.Track == nil {
		return &MissingFieldError{Object: "similartracks", Field: "track"}
	}
	s.Tracks = *wire.SimilarTracks.Track
	return nil
}

// UnmarshalJSON decodes a playlist item, requiring name and artists.
func (p *PlaylistItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name    *string   `json:"name"`
		Artists *[]Artist `json:"artists"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Name == nil {
		return &MissingFieldError{Object: "playlist item", Field: "name"}
	}
	if wire.Artists == nil {
		return &MissingFieldError{Object: "playlist item", Field: "artists"}
	}
	p.Name = *wire.Name
	p.Artists = *wire.Artists
	return nil
}

// UnmarshalJSON decodes a playlist, requiring the playlist array.
func (p *Playlist) UnmarshalJSON(data []byte) error {
	var wire struct {
		Playlist *[]PlaylistItem `json:"playlist"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Playlist == nil {
		return &MissingFieldError{Object: "response", Field: "playlist"}
	}
	p.Items = *wire.Playlist
	return nil
}

// ArtistNames returns the names of the credited artists in order.
func (p PlaylistItem) ArtistNames() []string {
	names := make([]string, len(p.Artists))
	for i, a := range p.Artists {
		names[i] = a.Name
	}
	return names
}
