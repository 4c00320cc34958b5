package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/stuttgart-things/sdm/internal/catalog"
)

// runAddFromRepo clones the community dashboard repository, lets the user
// pick dashboards grouped by category, and uploads the selection through the
// regular add batch.
func runAddFromRepo(ctx context.Context, repoURL string, skipErrors, force bool) error {
	var entries []catalog.Entry
	var checkout string
	var fetchErr error
	action := func() {
		entries, checkout, fetchErr = catalog.Fetch(ctx, repoURL)
	}
	if err := spinner.New().Title("Fetching dashboard catalog...").Action(action).Run(); err != nil {
		return err
	}
	if fetchErr != nil {
		return fetchErr
	}
	defer os.RemoveAll(checkout)

	if len(entries) == 0 {
		fmt.Println(infoStyle.Render("No dashboards available in the repository"))
		return nil
	}

	selected, err := selectCatalogEntries(entries)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	return runAddBatch(ctx, selected, skipErrors, force)
}

// selectCatalogEntries shows a category-grouped multi-select over the
// catalog.
func selectCatalogEntries(entries []catalog.Entry) ([]string, error) {
	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		options = append(options, huh.NewOption(e.Label(), e.Path))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select dashboards to add").
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
