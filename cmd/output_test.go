package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jfmyers9/playlie/internal/history"
	"github.com/jfmyers9/playlie/pkg/lastfm"
)

func TestPrintPlaylist_FromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/player/station/user/sebnow/recommended" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"playlist":[`+
			`{"name":"Track A","artists":[{"name":"X"},{"name":"Y"}]},`+
			`{"name":"Believe","artists":[{"name":"Cher"}],"duration":239}]}`)
	}))
	defer server.Close()

	client := lastfm.NewClient(lastfm.Config{
		APIKey:     "test_key",
		HTTPClient: server.Client(),
		WebURL:     server.URL,
	})

	playlist, err := client.User().Recommended(context.Background(), "sebnow")
	if err != nil {
		t.Fatalf("Recommended failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printPlaylist(&buf, playlist, 0); err != nil {
		t.Fatalf("printPlaylist failed: %v", err)
	}

	expected := "X & Y - Track A\nCher - Believe\n"
	if buf.String() != expected {
		t.Errorf("output = %q, expected %q", buf.String(), expected)
	}
}

func TestPrintPlaylist_Width(t *testing.T) {
	playlist := &lastfm.Playlist{Items: []lastfm.PlaylistItem{
		{Name: "Believe", Artists: []lastfm.Artist{{Name: "Cher"}}},
	}}

	var buf bytes.Buffer
	if err := printPlaylist(&buf, playlist, 20); err != nil {
		t.Fatalf("printPlaylist failed: %v", err)
	}

	expected := "Cher - Believe      \n"
	if buf.String() != expected {
		t.Errorf("output = %q, expected %q", buf.String(), expected)
	}
}

func TestPrintPlaylist_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":10,"message":"Invalid API Key"}`)
	}))
	defer server.Close()

	client := lastfm.NewClient(lastfm.Config{
		APIKey:     "bad_key",
		HTTPClient: server.Client(),
		WebURL:     server.URL,
	})

	_, err := client.User().Recommended(context.Background(), "sebnow")
	var apiErr *lastfm.ErrorResponse
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, expected *lastfm.ErrorResponse", err)
	}
	if apiErr.Code != lastfm.InvalidAPIKey || apiErr.Message != "Invalid API Key" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
}

func TestPrintSimilar(t *testing.T) {
	tracks := []lastfm.SimilarTrack{
		{Name: "Strong Enough", Artist: lastfm.Artist{Name: "Cher"}},
		{Name: "Vogue", Artist: lastfm.Artist{Name: "Madonna"}},
	}

	var buf bytes.Buffer
	if err := printSimilar(&buf, tracks, 0); err != nil {
		t.Fatalf("printSimilar failed: %v", err)
	}

	expected := "Cher - Strong Enough\nMadonna - Vogue\n"
	if buf.String() != expected {
		t.Errorf("output = %q, expected %q", buf.String(), expected)
	}
}

func TestPrintHistory(t *testing.T) {
	entries := []history.Entry{
		{
			User:      "sebnow",
			TrackName: "Track A",
			Artists:   []string{"X", "Y"},
			FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := printHistory(&buf, entries); err != nil {
		t.Fatalf("printHistory failed: %v", err)
	}

	expected := "2026-01-02T03:04:05Z sebnow X & Y - Track A\n"
	if buf.String() != expected {
		t.Errorf("output = %q, expected %q", buf.String(), expected)
	}
}
