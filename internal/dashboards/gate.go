package dashboards

import (
	"errors"
	"fmt"
)

// ErrUserAborted reports that the user declined a confirmation prompt. It is
// a clean early exit, not a failure.
var ErrUserAborted = errors.New("operation cancelled")

// StrongConfirmPhrase must be typed verbatim to confirm deleting every
// dashboard.
const StrongConfirmPhrase = "delete all"

// Gate decides whether a deletion may proceed and renders what is about to
// happen. Force mode skips all prompting and rendering.
type Gate struct {
	Prompt PromptSink
	Out    Output
}

// Confirm prompts according to mode. Deleting all dashboards requires a
// second, stronger confirmation on top of the standard one; pattern mode
// shows the matched titles before the standard prompt; explicit ids get the
// standard prompt only. Returns ErrUserAborted when the user declines at any
// stage.
func (g Gate) Confirm(mode Mode, targets []string, listing []Summary, force bool) error {
	if force {
		return nil
	}

	switch mode {
	case ModeAll:
		g.renderTargets(targets, listing)
		g.Out.Warnf("This will delete ALL %s. This action cannot be undone.", countNoun(len(targets)))
		if err := g.standardConfirm(len(targets)); err != nil {
			return err
		}
		ok, err := g.Prompt.ConfirmStrong(
			fmt.Sprintf("Type %q to confirm deleting every dashboard", StrongConfirmPhrase),
			StrongConfirmPhrase,
		)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserAborted
		}
	case ModeTitlePattern:
		g.renderTargets(targets, listing)
		return g.standardConfirm(len(targets))
	case ModeExplicitIDs:
		return g.standardConfirm(len(targets))
	}
	return nil
}

func (g Gate) standardConfirm(total int) error {
	ok, err := g.Prompt.Confirm(fmt.Sprintf("Are you sure you want to delete %s?", countNoun(total)))
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserAborted
	}
	return nil
}

func (g Gate) renderTargets(targets []string, listing []Summary) {
	titles := make(map[string]string, len(listing))
	for _, d := range listing {
		titles[d.ID] = d.Title
	}

	g.Out.Infof("Matched dashboards to delete:")
	for _, id := range targets {
		title := titles[id]
		if title == "" {
			title = "Untitled"
		}
		g.Out.Infof("  - %s (%s)", title, id)
	}
}

func countNoun(n int) string {
	if n == 1 {
		return "1 dashboard"
	}
	return fmt.Sprintf("%d dashboards", n)
}
