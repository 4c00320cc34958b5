package cmd

import (
	"context"
	"fmt"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

// runDeleteNonInteractive resolves, confirms, and executes a deletion request
// built from flags and args.
func runDeleteNonInteractive(ctx context.Context, req dashboards.DeletionRequest) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}
	svc := serviceAdapter{client: client}
	out := consoleOutput{}

	// Explicit UUIDs skip the listing fetch: missing dashboards surface as
	// per-item failures at deletion time.
	var listing []dashboards.Summary
	if req.Mode != dashboards.ModeExplicitIDs {
		listing, err = svc.List(ctx)
		if err != nil {
			return err
		}
	}

	targets, err := dashboards.Resolve(req, listing, out)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		out.Warnf("No dashboards found to delete")
		return nil
	}

	gate := dashboards.Gate{Prompt: huhPrompt{}, Out: out}
	if err := gate.Confirm(req.Mode, targets, listing, req.Force); err != nil {
		return err
	}

	return executeDeletions(ctx, svc, targets)
}

// executeDeletions runs the best-effort delete batch and prints the summary.
func executeDeletions(ctx context.Context, svc dashboards.Service, targets []string) error {
	exec := dashboards.Executor{
		Progress: consoleProgress{
			action: "Deleting",
			done:   "Deleted dashboard",
			fail:   "Failed to delete dashboard",
		},
	}

	result, runErr := exec.Execute(ctx, targets, svc.Delete, dashboards.Options{})
	if runErr != nil {
		fmt.Println(warningStyle.Render(
			fmt.Sprintf("Interrupted: deleted %d of %d dashboards", result.Succeeded, len(targets))))
		return runErr
	}

	summary := dashboards.Report(result, len(targets))
	if len(result.Failed) > 0 {
		fmt.Println(warningStyle.Render(summary))
		return errDeletionsFailed
	}
	fmt.Println(successStyle.Render(summary))
	return nil
}
