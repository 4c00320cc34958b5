package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

// runDeleteInteractive lets the user pick dashboards from a multi-select and
// feeds the selection through the same confirmation and execution path as the
// flag-driven mode.
func runDeleteInteractive(ctx context.Context, force bool) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}
	svc := serviceAdapter{client: client}
	out := consoleOutput{}

	listing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(listing) == 0 {
		fmt.Println("No dashboards found.")
		return nil
	}

	selected, err := selectDashboards(listing)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	req := dashboards.DeletionRequest{
		Mode:        dashboards.ModeExplicitIDs,
		Identifiers: selected,
		Force:       force,
	}
	targets, err := dashboards.Resolve(req, listing, out)
	if err != nil {
		return err
	}

	gate := dashboards.Gate{Prompt: huhPrompt{}, Out: out}
	if err := gate.Confirm(req.Mode, targets, listing, force); err != nil {
		return err
	}

	return executeDeletions(ctx, svc, targets)
}

// selectDashboards shows a multi-select over the listing.
func selectDashboards(listing []dashboards.Summary) ([]string, error) {
	options := make([]huh.Option[string], 0, len(listing))
	for _, d := range listing {
		title := d.Title
		if title == "" {
			title = "Untitled"
		}
		label := fmt.Sprintf("%s (%s)", title, d.ID)
		options = append(options, huh.NewOption(label, d.ID))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select dashboards to delete").
				Description("Space to toggle, enter to confirm").
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("selection form: %w", err)
	}
	return selected, nil
}
