package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/telemetrahq/telemetra-cli/context"
)

const defaultVersion = "v2"

// requestSpec describes one API call: an HTTP verb, a path template with
// {name} placeholders, the values to substitute into it, an optional query
// string and an optional JSON body. Identifiers are substituted verbatim;
// callers supply URL-safe values.
type requestSpec struct {
	Method      string
	Path        string
	PathParams  map[string]string
	Query       url.Values
	Body        any
	Unversioned bool
}

func expandPath(template string, params map[string]string) string {
	path := template
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}
	return path
}

// buildRequest constructs the HTTP request for a spec: base URL from the
// context, version segment, expanded path, encoded query, serialized body
// and the platform auth headers.
func buildRequest(ctx *context.Context, spec requestSpec) (*http.Request, error) {
	serverURL, err := ctx.ServerURL()
	if err != nil {
		return nil, err
	}

	requestURL := serverURL
	if !spec.Unversioned {
		version := ctx.Version
		if version == "" {
			version = defaultVersion
		}
		requestURL += "/" + version
	}
	requestURL += expandPath(spec.Path, spec.PathParams)

	if len(spec.Query) > 0 {
		requestURL += "?" + spec.Query.Encode()
	}

	var bodyReader io.Reader
	if spec.Body != nil {
		jsonBody, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, fmt.Errorf("error marshaling JSON: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(spec.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if spec.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ctx.APIKey != "" {
		req.Header.Set("X-ApiKey", ctx.APIKey)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	return req, nil
}

// doRequest issues exactly one HTTP call and decodes the JSON response into
// out. A 204 response is success with out left untouched. Non-2xx responses
// become an *APIError or *ValidationError carrying the status code. No
// retries, no caching.
func doRequest(req *http.Request, out any) error {
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ParseAPIError(resp.StatusCode, string(body))
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("error unmarshaling JSON: %w", err)
	}

	return nil
}
