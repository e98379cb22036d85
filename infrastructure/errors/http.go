package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPError describes a non-2xx HTTP response.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP error (%d %s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// ParseHTTPError returns nil for 2xx/3xx responses and an *HTTPError
// otherwise. The JSON "error" or "message" field is used as the message
// when present.
func ParseHTTPError(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    fmt.Sprintf("failed to read error response body: %v", err),
		}
	}

	body := string(bodyBytes)
	httpErr := &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
		Message:    body,
	}

	var jsonErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(bodyBytes, &jsonErr) == nil {
		switch {
		case jsonErr.Error != "":
			httpErr.Message = jsonErr.Error
		case jsonErr.Message != "":
			httpErr.Message = jsonErr.Message
		}
	}

	return httpErr
}
