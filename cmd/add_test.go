package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRewriteGitHubURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "blob link becomes raw content link",
			in:   "https://github.com/SigNoz/dashboards/blob/main/hostmetrics/cpu.json",
			want: "https://raw.githubusercontent.com/SigNoz/dashboards/main/hostmetrics/cpu.json",
		},
		{
			name: "nested path keeps every segment",
			in:   "https://github.com/owner/repo/blob/v1.2/a/b/c.json",
			want: "https://raw.githubusercontent.com/owner/repo/v1.2/a/b/c.json",
		},
		{
			name: "non-blob github link is untouched",
			in:   "https://github.com/owner/repo/releases",
			want: "https://github.com/owner/repo/releases",
		},
		{
			name: "other hosts are untouched",
			in:   "https://example.com/dashboard.json",
			want: "https://example.com/dashboard.json",
		},
		{
			name: "raw links pass through",
			in:   "https://raw.githubusercontent.com/owner/repo/main/d.json",
			want: "https://raw.githubusercontent.com/owner/repo/main/d.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteGitHubURL(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadDashboardFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "dashboard.json")
	if err := os.WriteFile(valid, []byte(`{"title":"CPU Usage"}`), 0644); err != nil {
		t.Fatal(err)
	}

	dashboard, err := loadDashboard(context.Background(), valid, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard["title"] != "CPU Usage" {
		t.Errorf("expected title CPU Usage, got %v", dashboard["title"])
	}

	invalid := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(invalid, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadDashboard(context.Background(), invalid, time.Second); err == nil {
		t.Error("expected error for invalid JSON")
	}

	if _, err := loadDashboard(context.Background(), filepath.Join(dir, "missing.json"), time.Second); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDashboardURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard.json":
			w.Write([]byte(`{"title":"From URL"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dashboard, err := loadDashboard(context.Background(), server.URL+"/dashboard.json", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard["title"] != "From URL" {
		t.Errorf("expected title From URL, got %v", dashboard["title"])
	}

	if _, err := loadDashboard(context.Background(), server.URL+"/missing.json", time.Second); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("expected empty suffix for 1, got %q", plural(1))
	}
	if plural(2) != "s" {
		t.Errorf("expected s for 2, got %q", plural(2))
	}
	if plural(0) != "s" {
		t.Errorf("expected s for 0, got %q", plural(0))
	}
}
