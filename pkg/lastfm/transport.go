package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode"
)

// apiURL builds an audioscrobbler API URL.
//
// Parameters are appended verbatim in the order given, after method,
// api_key and format. Values are not percent-encoded.
func (c *Client) apiURL(method string, params ...string) string {
	u := fmt.Sprintf("%s?method=%s&api_key=%s&format=json", c.baseURL, method, c.apiKey)
	for i := 0; i+1 < len(params); i += 2 {
		u += "&" + params[i] + "=" + params[i+1]
	}
	return u
}

// get issues a GET request and decodes the response into v.
//
// A 2xx response is decoded into v. Any other status is decoded as an
// ErrorResponse, which is returned as the error. Body decode failures in
// either case are reported as *ParseError, and failures sending the
// request or reading the body as *TransportError. Nothing is retried.
func (c *Client) get(ctx context.Context, op, rawURL string, v any) error {
	if strings.ContainsFunc(rawURL, unicode.IsControl) {
		panic(fmt.Sprintf("lastfm: invalid request URL %q: control character", rawURL))
	}

	c.logDebugf("lastfm: calling %s", op)

	target := splitURL(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.origin, nil)
	if err != nil {
		return &TransportError{Op: op, URL: rawURL, Err: err}
	}
	req.URL.Opaque = target.path
	req.URL.RawQuery = target.query

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logDebugf("lastfm: %s failed: %v", op, err)
		return &TransportError{Op: op, URL: rawURL, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		c.logDebugf("lastfm: %s: failed to read body: %v", op, err)
		return &TransportError{Op: op, URL: rawURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logDebugf("lastfm: %s returned status %d (%d bytes)", op, resp.StatusCode, len(body))

	if !isSuccess(resp.StatusCode) {
		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err != nil {
			return &ParseError{Op: op, Err: fmt.Errorf("status %d: %w", resp.StatusCode, err)}
		}
		c.logDebugf("lastfm: %s: api error %d: %s", op, int(apiErr.Code), apiErr.Message)
		return &apiErr
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Op: op, Err: err}
	}

	c.logDebugf("lastfm: %s succeeded", op)
	return nil
}

// requestTarget is a URL split into the parts sent on the request line.
type requestTarget struct {
	origin string // scheme://host
	path   string
	query  string
}

// splitURL splits rawURL without validating percent escapes, so "100%" or
// "a%zz" in a path or query are sent exactly as written. The fragment is
// dropped. Spaces and non-ASCII bytes are escaped because they cannot
// appear on a request line.
func splitURL(rawURL string) requestTarget {
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		rawURL = rawURL[:i]
	}

	var t requestTarget
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		end := i + 3
		if j := strings.IndexAny(rest[end:], "/?"); j >= 0 {
			end += j
		} else {
			end = len(rest)
		}
		t.origin, rest = rest[:end], rest[end:]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, t.query = rest[:i], escapeRequestLine(rest[i+1:])
	}
	t.path = escapeRequestLine(rest)
	if t.path == "" {
		t.path = "/"
	}
	return t
}

func escapeRequestLine(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == ' ' || c >= 0x80 {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
