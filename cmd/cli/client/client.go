// Package client is the small HTTP client the CLI commands share.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crucial707/exercise-tracker/cmd/cli/config"
)

// HTTPClient is used for every call. Tests may replace it.
var HTTPClient = &http.Client{Timeout: 15 * time.Second}

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("status %d: %s", e.Status, e.Message)
	for field, reason := range e.Fields {
		msg += fmt.Sprintf(" (%s: %s)", field, reason)
	}
	return msg
}

// PostForm sends form as an urlencoded body to path and decodes the JSON answer into out.
func PostForm(path string, form url.Values, out interface{}) error {
	req, err := http.NewRequest("POST", config.APIURL()+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(req, out)
}

// GetJSON fetches path with the given query and decodes the JSON answer into out.
func GetJSON(path string, query url.Values, out interface{}) error {
	u := config.APIURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return err
	}
	return do(req, out)
}

// UserPath returns /api/users/{id}/suffix with id escaped.
func UserPath(id, suffix string) string {
	return "/api/users/" + url.PathEscape(id) + "/" + suffix
}

func do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			apiErr.Message = payload.Error
			apiErr.Fields = payload.Fields
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
