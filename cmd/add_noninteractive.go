package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

// runAddBatch uploads the given sources sequentially. Unlike deletion this
// batch stops at the first failed item unless skipErrors is set.
func runAddBatch(ctx context.Context, sources []string, skipErrors, force bool) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}
	out := consoleOutput{}

	if !force && len(sources) > 1 {
		ok, err := huhPrompt{}.Confirm(fmt.Sprintf("Are you sure you want to add %d dashboards?", len(sources)))
		if err != nil {
			return err
		}
		if !ok {
			return dashboards.ErrUserAborted
		}
	}

	exec := dashboards.Executor{
		Progress: consoleProgress{
			action: "Adding",
			done:   "Added dashboard from",
			fail:   "Failed to add dashboard from",
		},
	}

	op := func(ctx context.Context, source string) error {
		data, err := loadDashboard(ctx, source, client.HTTPClient.Timeout)
		if err != nil {
			return err
		}
		uuid, err := client.AddDashboard(ctx, data)
		if err != nil {
			return err
		}
		out.Infof("Created dashboard %s", uuid)
		return nil
	}

	result, runErr := exec.Execute(ctx, sources, op, dashboards.Options{StopOnFirstError: !skipErrors})
	if runErr != nil && errors.Is(runErr, context.Canceled) {
		fmt.Println(warningStyle.Render(
			fmt.Sprintf("Interrupted: added %d of %d dashboards", result.Succeeded, len(sources))))
		return runErr
	}

	total := len(sources)
	if len(result.Failed) == 0 {
		fmt.Println(successStyle.Render(
			fmt.Sprintf("Successfully added all %d dashboard%s", total, plural(total))))
		return nil
	}

	fmt.Println(warningStyle.Render(fmt.Sprintf("Added %d of %d dashboard%s. Failed: %s",
		result.Succeeded, total, plural(total), strings.Join(result.FailedIDs(), ", "))))
	return errAddsFailed
}
