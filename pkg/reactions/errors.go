package reactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Remote call errors
var (
	ErrRemoteCall  = errors.New("remote call failed")
	ErrRateLimited = errors.New("rate limited after retry")
)

// DefaultRetryAfter is used when a rate limit response does not announce a wait.
const DefaultRetryAfter = time.Second

// CallError describes a failed Discord REST call. Status is zero when the
// request never produced an HTTP response.
type CallError struct {
	Op     string
	Status int
	Err    error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// RetryAfter reports whether err is a rate limit response and how long
// Discord asked to wait. A missing or zero retry_after yields DefaultRetryAfter.
func RetryAfter(err error) (time.Duration, bool) {
	var rl *discordgo.RateLimitError
	if !errors.As(err, &rl) {
		return 0, false
	}
	if rl.RateLimit == nil || rl.TooManyRequests == nil || rl.RetryAfter <= 0 {
		return DefaultRetryAfter, true
	}
	return rl.RetryAfter, true
}

// StatusCode extracts the HTTP status carried by a discordgo error.
func StatusCode(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}
	if _, ok := RetryAfter(err); ok || undecodableRateLimit(err) {
		return http.StatusTooManyRequests
	}
	return 0
}

// undecodableRateLimit matches the bare decoding error discordgo returns when
// a 429 body cannot be parsed. Success bodies are decoded behind
// discordgo.ErrJSONUnmarshal, which keeps only the message, so they never match.
func undecodableRateLimit(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func callError(op string, err error, sentinel error) *CallError {
	return &CallError{
		Op:     op,
		Status: StatusCode(err),
		Err:    fmt.Errorf("%w: %v", sentinel, err),
	}
}
