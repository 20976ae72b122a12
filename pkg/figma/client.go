package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	figmaAPIBase = "https://api.figma.com/v1"
	maxRetries   = 3
)

// Client represents a Figma API client with retry logic for rate limits and
// transient server errors.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	retryDelay  time.Duration
}

// NewClient creates a new Figma API client with the provided personal access token.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
		retryDelay: 2 * time.Second,
	}
}

var (
	fileKeyRe  = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)
	queryIDsRe = regexp.MustCompile(`[?&]node-id=([^&#]*)`)
	hashIDsRe  = regexp.MustCompile(`#([^?]+)$`)
	pathIDsRe  = regexp.MustCompile(`/nodes/([^?#]+)`)
)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyRe.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// ExtractNodeIDs returns the node ids referenced by a Figma URL, in order
// and without duplicates. Ids are read from the node-id query parameter, the
// hash fragment or a /nodes/ path segment. The URL-safe "1-2" form is
// converted to the API form "1:2". A URL without node ids yields an empty slice.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	var raw string
	switch {
	case queryIDsRe.MatchString(figmaURL):
		raw = queryIDsRe.FindStringSubmatch(figmaURL)[1]
	case pathIDsRe.MatchString(figmaURL):
		raw = pathIDsRe.FindStringSubmatch(figmaURL)[1]
	case hashIDsRe.MatchString(figmaURL):
		raw = hashIDsRe.FindStringSubmatch(figmaURL)[1]
	default:
		return []string{}, nil
	}

	unescaped, err := url.QueryUnescape(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid node-id %q: %w", raw, err)
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(unescaped, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if !strings.Contains(id, ":") {
			id = strings.Replace(id, "-", ":", 1)
		}
		ids = append(ids, id)
	}

	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs removes repeated ids, keeping the first occurrence.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			result = append(result, id)
			seen[id] = true
		}
	}

	return result
}

// GetFile retrieves the complete document tree of a file.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	var fileResp FileResponse
	if err := c.get(fmt.Sprintf("%s/files/%s", c.baseURL, fileKey), &fileResp); err != nil {
		return nil, err
	}
	return &fileResp, nil
}

// GetFileNodes retrieves the subtrees rooted at nodeIDs.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node IDs given")
	}

	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, fileKey, url.QueryEscape(strings.Join(nodeIDs, ",")))

	var nodesResp NodesResponse
	if err := c.get(endpoint, &nodesResp); err != nil {
		return nil, err
	}
	return &nodesResp, nil
}

// get performs an authenticated GET and decodes the JSON body into v.
// It retries up to maxRetries times on transport errors, 429 and 5xx
// responses, waiting attempt*retryDelay between attempts.
func (c *Client) get(endpoint string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retry, err := c.do(endpoint, attempt)
		if err == nil {
			if err := json.Unmarshal(body, v); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return nil
		}

		lastErr = err
		if !retry || attempt == maxRetries {
			break
		}
		time.Sleep(time.Duration(attempt) * c.retryDelay)
	}

	return lastErr
}

func (c *Client) do(endpoint string, attempt int) (body []byte, retry bool, err error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)
	req.Header.Set("Connection", "close")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		retry = resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(msg))
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to read response body: %w", attempt, err)
	}
	return body, false, nil
}
