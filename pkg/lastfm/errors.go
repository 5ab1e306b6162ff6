package lastfm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Error kinds. Every error returned by a Client operation matches exactly
// one of these with errors.Is.
var (
	// ErrTransport matches failures reaching or reading from the remote
	// endpoint.
	ErrTransport = errors.New("lastfm: transport error")

	// ErrParsing matches response bodies that could not be decoded into
	// the expected schema.
	ErrParsing = errors.New("lastfm: parsing error")

	// ErrAPI matches error envelopes returned by the API.
	ErrAPI = errors.New("lastfm: api error")
)

// TransportError is returned when the request could not be sent or the
// response body could not be read.
type TransportError struct {
	Op  string // Operation, e.g. "track.getsimilar"
	URL string // Request URL
	Err error  // Underlying error from the HTTP client
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lastfm: %s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ParseError is returned when a response body, for either a success or an
// error status, does not match the expected schema.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("lastfm: %s: failed to parse response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParsing }

// MissingFieldError reports a required JSON field that was absent or null.
type MissingFieldError struct {
	Object string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Object, e.Field)
}

// InvalidErrorCodeError is returned when an integer is not one of the
// error codes published by Last.fm.
type InvalidErrorCodeError struct {
	Code uint64
}

func (e *InvalidErrorCodeError) Error() string {
	return fmt.Sprintf("invalid error code: %d", e.Code)
}

// ErrorResponse is the error envelope returned by the API:
//
//	{"error": 10, "message": "Invalid API Key"}
//
// It implements error and is returned as-is by Client operations.
type ErrorResponse struct {
	Code    ErrorCode `json:"error"`
	Message string    `json:"message"`
}

// Error returns the error message.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("lastfm: error %d: %s", int(e.Code), e.Message)
}

// Is reports whether target is ErrAPI or an *ErrorResponse with the same
// code.
//
// This allows errors.Is(err, &lastfm.ErrorResponse{Code: lastfm.InvalidAPIKey})
// to match regardless of the message text.
func (e *ErrorResponse) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	t, ok := target.(*ErrorResponse)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Temporary returns true if the error is temporary and the request
// could succeed later.
//
// The following Last.fm error codes are considered temporary:
//   - 11: Service Offline
//   - 16: Service Temporarily Unavailable
func (e *ErrorResponse) Temporary() bool {
	switch e.Code {
	case ServiceOffline, ServiceTemporarilyUnavailable:
		return true
	default:
		return false
	}
}

// UnmarshalJSON decodes the envelope, requiring both fields.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		Code    *ErrorCode `json:"error"`
		Message *string    `json:"message"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Code == nil {
		return &MissingFieldError{Object: "error response", Field: "error"}
	}
	if wire.Message == nil {
		return &MissingFieldError{Object: "error response", Field: "message"}
	}
	e.Code = *wire.Code
	e.Message = *wire.Message
	return nil
}

// ErrorCode is an error code published by the Last.fm API.
//
// Codes 1, 19 and 28 are not defined upstream and have no constant.
type ErrorCode int

// Last.fm error codes.
const (
	InvalidService                ErrorCode = 2
	InvalidMethod                 ErrorCode = 3
	AuthenticationFailed          ErrorCode = 4
	InvalidFormat                 ErrorCode = 5
	InvalidParameters             ErrorCode = 6
	InvalidResource               ErrorCode = 7
	OperationFailed               ErrorCode = 8
	InvalidSessionKey             ErrorCode = 9
	InvalidAPIKey                 ErrorCode = 10
	ServiceOffline                ErrorCode = 11
	SubscribersOnly               ErrorCode = 12
	InvalidMethodSignature        ErrorCode = 13
	UnauthorizedToken             ErrorCode = 14
	StreamingNotAvailable         ErrorCode = 15
	ServiceTemporarilyUnavailable ErrorCode = 16
	RequiresLogin                 ErrorCode = 17
	TrialExpired                  ErrorCode = 18
	NotEnoughContent              ErrorCode = 20
	NotEnoughMembers              ErrorCode = 21
	NotEnoughFans                 ErrorCode = 22
	NotEnoughNeighbours           ErrorCode = 23
	NoPeakRadio                   ErrorCode = 24
	RadioNotFound                 ErrorCode = 25
	APIKeySuspended               ErrorCode = 26
	Deprecated                    ErrorCode = 27
	RateLimitExceeded             ErrorCode = 29
)

var errorCodeText = map[ErrorCode]string{
	InvalidService:                "Invalid service - This service does not exist",
	InvalidMethod:                 "Invalid Method - No method with that name in this package",
	AuthenticationFailed:          "Authentication Failed - You do not have permissions to access the service",
	InvalidFormat:                 "Invalid format - This service doesn't exist in that format",
	InvalidParameters:             "Invalid parameters - Your request is missing a required parameter",
	InvalidResource:               "Invalid resource specified",
	OperationFailed:               "Operation failed - Most likely the backend service failed",
	InvalidSessionKey:             "Invalid session key - Please re-authenticate",
	InvalidAPIKey:                 "Invalid API key - You must be granted a valid key by last.fm",
	ServiceOffline:                "Service Offline - This service is temporarily offline",
	SubscribersOnly:               "Subscribers Only - This station is only available to paid last.fm subscribers",
	InvalidMethodSignature:        "Invalid method signature supplied",
	UnauthorizedToken:             "Unauthorized Token - This token has not been authorized",
	StreamingNotAvailable:         "This item is not available for streaming",
	ServiceTemporarilyUnavailable: "The service is temporarily unavailable",
	RequiresLogin:                 "Login: User requires to be logged in",
	TrialExpired:                  "Trial Expired - This user has no free radio plays left",
	NotEnoughContent:              "Not Enough Content - There is not enough content to play this station",
	NotEnoughMembers:              "Not Enough Members - This group does not have enough members for radio",
	NotEnoughFans:                 "Not Enough Fans - This artist does not have enough fans for radio",
	NotEnoughNeighbours:           "Not Enough Neighbours - There are not enough neighbours for radio",
	NoPeakRadio:                   "No Peak Radio - This user is not allowed to listen to radio during peak usage",
	RadioNotFound:                 "Radio Not Found - Radio station not found",
	APIKeySuspended:               "API Key Suspended - This application is not allowed to make requests to the web services",
	Deprecated:                    "Deprecated - This type of request is no longer supported",
	RateLimitExceeded:             "Rate Limit Exceeded - Your IP has made too many requests in a short period",
}

// ParseErrorCode maps a wire integer to an ErrorCode.
//
// Returns *InvalidErrorCodeError for integers outside the published set.
func ParseErrorCode(n uint64) (ErrorCode, error) {
	if n > uint64(RateLimitExceeded) {
		return 0, &InvalidErrorCodeError{Code: n}
	}
	code := ErrorCode(n)
	if _, ok := errorCodeText[code]; !ok {
		return 0, &InvalidErrorCodeError{Code: n}
	}
	return code, nil
}

// String returns the upstream description of the code.
func (c ErrorCode) String() string {
	if s, ok := errorCodeText[c]; ok {
		return s
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// MarshalJSON writes the code as a bare integer.
func (c ErrorCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON decodes a bare integer through ParseErrorCode.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("error code: %w", err)
	}
	code, err := ParseErrorCode(n)
	if err != nil {
		return err
	}
	*c = code
	return nil
}
