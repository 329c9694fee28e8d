package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// RequestOptions describes everything about one call besides method and
// path template.
type RequestOptions struct {
	// PathParams fills `{name}` placeholders in the path template. Values
	// are percent-encoded before substitution.
	PathParams map[string]string

	// Query holds query-string parameters. Empty values are omitted
	// entirely, never serialized.
	Query map[string]string

	// Body is JSON-serialized for POST/PATCH requests.
	Body any

	// Header carries extra request headers.
	Header http.Header
}

// pendingRequest is an immutable description of one outbound call, captured
// before the first send so it can be replayed verbatim after a token
// refresh. The retry count is threaded through send() explicitly rather
// than stored here.
type pendingRequest struct {
	method string
	url    string
	body   []byte
	header http.Header
}

var pathParamPattern = regexp.MustCompile(`\{(\w+)\}`)

// expandPath substitutes `{name}` placeholders with percent-encoded values.
// A placeholder without a matching param is an error.
func expandPath(template string, params map[string]string) (string, error) {
	var missing []string
	expanded := pathParamPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("missing path params: %s", strings.Join(missing, ", "))
	}
	return expanded, nil
}

// encodeQuery serializes non-empty query parameters, sorted by key.
func encodeQuery(query map[string]string) string {
	values := url.Values{}
	for k, v := range query {
		if v != "" {
			values.Set(k, v)
		}
	}
	return values.Encode()
}

// newPendingRequest resolves the path template, query string, and body into
// a replayable request description.
func (c *Client) newPendingRequest(method, path string, opts *RequestOptions) (*pendingRequest, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	expanded, err := expandPath(path, opts.PathParams)
	if err != nil {
		return nil, err
	}

	fullURL := c.baseURL + expanded
	if qs := encodeQuery(opts.Query); qs != "" {
		fullURL += "?" + qs
	}

	var body []byte
	if opts.Body != nil {
		body, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	header := make(http.Header)
	for k, vs := range opts.Header {
		header[k] = append([]string(nil), vs...)
	}

	return &pendingRequest{method: method, url: fullURL, body: body, header: header}, nil
}

// build materializes an *http.Request, attaching the bearer token when one
// is available.
func (p *pendingRequest) build(ctx context.Context, accessToken string) (*http.Request, error) {
	var reader *bytes.Reader
	if p.body != nil {
		reader = bytes.NewReader(p.body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, p.url, reader)
	if err != nil {
		return nil, err
	}

	for k, vs := range p.header {
		req.Header[k] = append([]string(nil), vs...)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return req, nil
}
