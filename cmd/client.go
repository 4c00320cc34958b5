package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stuttgart-things/sdm/internal/config"
	"github.com/stuttgart-things/sdm/internal/dashboards"
	"github.com/stuttgart-things/sdm/internal/signoz"
)

// newAPIClient builds a SigNoz client from flags, environment, and the saved
// config, in that precedence order. With requireToken the call fails when no
// usable token is found anywhere.
func newAPIClient(requireToken bool) (*signoz.Client, error) {
	cfg := loadConfigOrEmpty()

	url := rootURL
	if url == "" {
		url = os.Getenv("SIGNOZ_URL")
	}
	if url == "" {
		url = cfg.URL
	}

	token := rootToken
	if token == "" {
		token = os.Getenv("SIGNOZ_TOKEN")
	}
	if token == "" && cfg.Token != "" && config.TokenValid(cfg.Token, time.Now()) {
		token = cfg.Token
	}

	if requireToken && token == "" {
		return nil, fmt.Errorf("no token found: run 'sdm login' first or pass --token")
	}

	return signoz.NewClient(url, token, rootTimeout), nil
}

func loadConfigOrEmpty() *config.Config {
	path, err := config.Path()
	if err != nil {
		return &config.Config{}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// serviceAdapter exposes the SigNoz client through the interface the
// dashboards core consumes.
type serviceAdapter struct {
	client *signoz.Client
}

func (s serviceAdapter) List(ctx context.Context) ([]dashboards.Summary, error) {
	listed, err := s.client.ListDashboards(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dashboards.Summary, 0, len(listed))
	for _, d := range listed {
		summaries = append(summaries, dashboards.Summary{
			ID:        d.UUID,
			Title:     d.Data.Title,
			CreatedBy: d.CreatedBy,
		})
	}
	return summaries, nil
}

func (s serviceAdapter) Delete(ctx context.Context, id string) error {
	return s.client.DeleteDashboard(ctx, id)
}
