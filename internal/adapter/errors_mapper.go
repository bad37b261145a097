package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sparkkhoj/spark-khoj/models"
)

// mapHTTPError converts a non-2xx resty response into an [*Error] carrying
// the server's user-facing message. When the body is not the expected JSON
// {"message"} shape (e.g. a proxy error page), the raw body or the standard
// status text is used instead.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := ""

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		message = body.Message
	}
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &Error{StatusCode: resp.StatusCode(), Message: message}
}
