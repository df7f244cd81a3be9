package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp),
	}
}

// errorMessage extracts the gateway's error text from a failed response.
// The gateway answers with {"error": "..."}; anything that does not parse
// falls back to the raw body, and an empty body to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var structured struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &structured); err == nil && structured.Error != "" {
		return structured.Error
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
