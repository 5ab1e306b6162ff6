// Package lastfm provides a read-only client for the Last.fm API 2.0
// and the recommendations endpoint of the Last.fm website.
//
// Example usage:
//
//	import "github.com/jfmyers9/playlie/pkg/lastfm"
//
//	client := lastfm.NewClient(lastfm.Config{
//	    APIKey:     os.Getenv("LASTFM_API_KEY"),
//	    HTTPClient: httpClient,
//	})
//
//	tracks, err := client.Track().GetSimilar(ctx, "cher", "believe")
//	if err != nil {
//	    log.Fatal(err)
//	}
package lastfm

import (
	"net/http"
)

// Doer sends an HTTP request and returns the response.
//
// *http.Client implements Doer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds client configuration.
type Config struct {
	APIKey     string // Last.fm API key, sent as the api_key query parameter
	HTTPClient Doer   // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string // Optional: API endpoint (defaults to DefaultBaseURL, used for testing)
	WebURL     string // Optional: website root (defaults to DefaultWebURL, used for testing)
	UserAgent  string // Optional: User-Agent header (defaults to DefaultUserAgent)
	Logger     Logger // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Last.fm operations.
//
// A Client holds no mutable state and may be shared between goroutines as
// long as its HTTP client may. The HTTP client is shared, not owned: the
// Client never closes or reconfigures it.
type Client struct {
	apiKey     string
	httpClient Doer
	baseURL    string
	webURL     string
	userAgent  string
	logger     Logger

	track *TrackService
	user  *UserService
}

const (
	// DefaultBaseURL is the default Last.fm API endpoint.
	DefaultBaseURL = "http://ws.audioscrobbler.com/2.0"

	// DefaultWebURL is the Last.fm website, which serves station playlists.
	DefaultWebURL = "https://last.fm"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "playlie/1.0"
)

// NewClient creates a new Last.fm client.
//
// The API key is not validated; an invalid key is reported by the API as
// an *ErrorResponse with code InvalidAPIKey.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	webURL := cfg.WebURL
	if webURL == "" {
		webURL = DefaultWebURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		webURL:     webURL,
		userAgent:  userAgent,
		logger:     cfg.Logger,
	}

	c.track = &TrackService{client: c}
	c.user = &UserService{client: c}

	return c
}

// Track returns the track service.
func (c *Client) Track() *TrackService {
	return c.track
}

// User returns the user service.
func (c *Client) User() *UserService {
	return c.user
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
