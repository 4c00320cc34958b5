package cmd

import (
	"errors"
	"fmt"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

// errDeletionsFailed signals a partial failure after the summary has already
// been printed, so the command only has to set the exit code.
var errDeletionsFailed = errors.New("some deletions failed")

// buildDeletionRequest maps the delete command's flags and args onto a
// deletion request, rejecting contradictory combinations before any network
// call.
func buildDeletionRequest(args []string, byTitle, all, force bool) (dashboards.DeletionRequest, error) {
	if all && len(args) > 0 {
		return dashboards.DeletionRequest{}, fmt.Errorf("cannot combine --all with explicit identifiers")
	}
	if all && byTitle {
		return dashboards.DeletionRequest{}, fmt.Errorf("cannot combine --all with --title")
	}

	mode := dashboards.ModeExplicitIDs
	switch {
	case all:
		mode = dashboards.ModeAll
	case byTitle:
		mode = dashboards.ModeTitlePattern
	}

	req := dashboards.DeletionRequest{
		Mode:        mode,
		Identifiers: args,
		Force:       force,
	}
	if err := req.Validate(); err != nil {
		return dashboards.DeletionRequest{}, err
	}
	return req, nil
}
