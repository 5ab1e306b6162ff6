// Package lastfm provides a client library for the Last.fm API 2.0.
//
// # Overview
//
// This package implements a small, read-only Go client for Last.fm. It
// covers similar-track lookups on the public audioscrobbler API and the
// recommended station playlist served by the Last.fm website. Every
// operation takes a context.Context, issues a single GET request, and
// returns either a decoded value or a typed error. Nothing is retried or
// cached.
//
// # Quick Start
//
//	client := lastfm.NewClient(lastfm.Config{
//	    APIKey:     "your-api-key",
//	    HTTPClient: &http.Client{Timeout: 10 * time.Second},
//	})
//
//	tracks, err := client.Track().GetSimilar(ctx, "cher", "believe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	playlist, err := client.User().Recommended(ctx, "sebnow")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every failure is one of three kinds:
//
//   - *TransportError (errors.Is(err, ErrTransport)): the request could not
//     be sent or the body could not be read. Context cancellation and HTTP
//     client timeouts land here.
//   - *ParseError (errors.Is(err, ErrParsing)): the body did not match the
//     expected schema. A 2xx response carrying an error envelope, or a
//     non-2xx response carrying anything but a valid error envelope, is a
//     parse error.
//   - *ErrorResponse (errors.Is(err, ErrAPI)): Last.fm returned its error
//     envelope with a non-2xx status.
//
// Example:
//
//	tracks, err := client.Track().GetSimilar(ctx, artist, track)
//	var apiErr *lastfm.ErrorResponse
//	if errors.As(err, &apiErr) && apiErr.Code == lastfm.InvalidAPIKey {
//	    // Ask the user for a new key
//	}
//
// Error codes outside the published set are never mapped to a default:
// the envelope fails to decode and the caller receives a *ParseError
// wrapping *InvalidErrorCodeError.
//
// # URL Encoding
//
// Arguments are substituted into URLs verbatim. Callers must pass values
// that are already safe for a query string or path segment.
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
