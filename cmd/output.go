package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

// consoleOutput writes styled status lines to stdout. It is the Output
// implementation handed to the dashboards core.
type consoleOutput struct{}

func (consoleOutput) Successf(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

func (consoleOutput) Warnf(format string, args ...any) {
	fmt.Println(warningStyle.Render(fmt.Sprintf(format, args...)))
}

func (consoleOutput) Errorf(format string, args ...any) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (consoleOutput) Infof(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// consoleProgress prints per-item progress lines for bulk operations.
type consoleProgress struct {
	action string // present tense, e.g. "Deleting"
	done   string // success prefix, e.g. "Deleted dashboard"
	fail   string // failure prefix, e.g. "Failed to delete dashboard"
}

func (p consoleProgress) ItemStart(id string, index, total int) {
	fmt.Println(progressStyle.Render(fmt.Sprintf("%s %s (%d/%d)", p.action, id, index, total)))
}

func (p consoleProgress) ItemResult(id string, err error) {
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%s %s: %v", p.fail, id, err)))
		return
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("%s: %s", p.done, id)))
}

func (p consoleProgress) Complete(result dashboards.BulkResult) {}

// huhPrompt asks for confirmation through huh forms.
type huhPrompt struct{}

func (huhPrompt) Confirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("Cancel").
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation form: %w", err)
	}
	return confirm, nil
}

func (huhPrompt) ConfirmStrong(message, requiredPhrase string) (bool, error) {
	var typed string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(message).
				Placeholder(requiredPhrase).
				Value(&typed),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation form: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(typed), requiredPhrase), nil
}
