package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/sdm/internal/dashboards"
)

var (
	deleteByTitle bool
	deleteAll     bool
	deleteYes     bool
	deleteForce   bool

	// Mode flags for delete
	deleteInteractive    bool
	deleteNonInteractive bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete [identifiers...]",
	Aliases: []string{"rm"},
	Short:   "Delete dashboards by UUID, title pattern, or all at once",
	Long: `Deletes one or more dashboards. Identifiers are dashboard UUIDs by default;
with --title they are treated as case-insensitive glob/regex patterns matched
against dashboard titles. --all targets every dashboard and asks for a
stronger confirmation. Without identifiers and with a terminal attached, a
multi-select picker is shown.`,
	Run: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteByTitle, "title", "T", false, "Match identifiers against dashboard titles (glob/regex)")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "Delete every dashboard")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip all confirmation prompts")
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Same as --yes")

	// Mode flags
	deleteCmd.Flags().BoolVarP(&deleteInteractive, "interactive", "i", false, "Force interactive mode")
	deleteCmd.Flags().BoolVar(&deleteNonInteractive, "non-interactive", false, "Force non-interactive mode")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) {
	force := deleteYes || deleteForce

	// SIGINT aborts the remaining deletions cleanly; whatever already
	// happened is reported before exiting non-zero.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Determine mode
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if deleteNonInteractive {
		interactive = false
	} else if deleteInteractive {
		interactive = true
	}

	var err error
	if len(args) == 0 && !deleteAll {
		if !interactive {
			fmt.Println(errorStyle.Render("provide at least one dashboard UUID or pattern, or use --all"))
			os.Exit(1)
		}
		err = runDeleteInteractive(ctx, force)
	} else {
		var req dashboards.DeletionRequest
		req, err = buildDeletionRequest(args, deleteByTitle, deleteAll, force)
		if err == nil {
			err = runDeleteNonInteractive(ctx, req)
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, dashboards.ErrUserAborted):
		fmt.Println("Operation cancelled")
	case errors.Is(err, context.Canceled):
		fmt.Println(warningStyle.Render("Operation cancelled by user"))
		os.Exit(1)
	case errors.Is(err, errDeletionsFailed):
		// summary already printed
		os.Exit(1)
	default:
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
