package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// errAddsFailed signals a partial failure after the summary has already been
// printed.
var errAddsFailed = errors.New("some dashboards failed to upload")

// loadDashboard reads a dashboard JSON document from a local file or an
// HTTP(S) URL.
func loadDashboard(ctx context.Context, source string, timeout time.Duration) (map[string]any, error) {
	parsed, err := url.Parse(source)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		return loadDashboardURL(ctx, source, timeout)
	}
	return loadDashboardFile(source)
}

func loadDashboardFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dashboard file: %w", err)
	}

	var dashboard map[string]any
	if err := json.Unmarshal(data, &dashboard); err != nil {
		return nil, fmt.Errorf("invalid JSON in dashboard file %s: %w", path, err)
	}
	return dashboard, nil
}

func loadDashboardURL(ctx context.Context, rawURL string, timeout time.Duration) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rewriteGitHubURL(rawURL), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching dashboard from URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching dashboard from URL: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var dashboard map[string]any
	if err := json.Unmarshal(body, &dashboard); err != nil {
		return nil, fmt.Errorf("invalid JSON in URL response: %w", err)
	}
	return dashboard, nil
}

// rewriteGitHubURL converts github.com blob links to their
// raw.githubusercontent.com equivalent so the JSON body is fetched instead of
// the HTML page.
func rewriteGitHubURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host != "github.com" {
		return rawURL
	}

	parts := strings.Split(parsed.Path, "/")
	// /owner/repo/blob/branch/path...
	if len(parts) < 5 || parts[3] != "blob" {
		return rawURL
	}
	parts = append(parts[:3], parts[4:]...)
	return "https://raw.githubusercontent.com" + strings.Join(parts, "/")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
