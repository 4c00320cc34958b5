package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stuttgart-things/sdm/internal/catalog"
	"github.com/stuttgart-things/sdm/internal/dashboards"
)

var (
	addSkipErrors bool
	addYes        bool
	addForce      bool
	addFromRepo   bool
	addRepoURL    string
)

var addCmd = &cobra.Command{
	Use:   "add [files or URLs...]",
	Short: "Add dashboards from JSON files or URLs",
	Long: `Uploads one or more dashboard JSON documents to the SigNoz API. Sources can
be local files or HTTP(S) URLs; github.com blob links are rewritten to their
raw content automatically. By default the batch stops at the first failed
upload; --skip-errors continues with the remaining sources. With --from-repo
the community dashboards repository is cloned and offered as a picker.`,
	Run: runAdd,
}

func init() {
	addCmd.Flags().BoolVarP(&addSkipErrors, "skip-errors", "s", false, "Continue with the remaining dashboards after an error")
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "Skip all confirmation prompts")
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Same as --yes")
	addCmd.Flags().BoolVar(&addFromRepo, "from-repo", false, "Pick dashboards from the community repository")
	addCmd.Flags().StringVar(&addRepoURL, "repo-url", catalog.DefaultRepoURL, "Dashboard repository to browse with --from-repo")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	force := addYes || addForce

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case addFromRepo:
		err = runAddFromRepo(ctx, addRepoURL, addSkipErrors, force)
	case len(args) == 0:
		fmt.Println(errorStyle.Render("provide at least one dashboard file or URL, or use --from-repo"))
		os.Exit(1)
	default:
		err = runAddBatch(ctx, args, addSkipErrors, force)
	}

	switch {
	case err == nil:
	case errors.Is(err, dashboards.ErrUserAborted):
		fmt.Println("Operation cancelled")
	case errors.Is(err, context.Canceled):
		fmt.Println(warningStyle.Render("Operation cancelled by user"))
		os.Exit(1)
	case errors.Is(err, errAddsFailed):
		os.Exit(1)
	default:
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
