package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/sdm/internal/signoz"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all dashboards",
	Long:    `Fetches every dashboard from the SigNoz API and prints it as a table or JSON.`,
	Run:     runList,
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	client, err := newAPIClient(true)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dashboards, err := fetchDashboards(ctx, client)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	if len(dashboards) == 0 {
		fmt.Println("No dashboards found.")
		return
	}

	switch listOutput {
	case "json":
		printDashboardsJSON(dashboards)
	default:
		printDashboardTable(dashboards)
	}
}

// fetchDashboards lists dashboards, with a spinner when attached to a
// terminal.
func fetchDashboards(ctx context.Context, client *signoz.Client) ([]signoz.Dashboard, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return client.ListDashboards(ctx)
	}

	var dashboards []signoz.Dashboard
	var fetchErr error
	action := func() {
		dashboards, fetchErr = client.ListDashboards(ctx)
	}
	if err := spinner.New().Title("Fetching dashboards...").Action(action).Run(); err != nil {
		return nil, err
	}
	return dashboards, fetchErr
}

func printDashboardTable(dashboards []signoz.Dashboard) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tTITLE\tCREATED BY")
	fmt.Fprintln(w, "----\t-----\t----------")

	for _, d := range dashboards {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.UUID, d.Title(), valueOr(d.CreatedBy, "Unknown"))
	}

	w.Flush()
}

func printDashboardsJSON(dashboards []signoz.Dashboard) {
	data, err := json.MarshalIndent(dashboards, "", "  ")
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error marshalling JSON: %v", err)))
		os.Exit(1)
	}
	fmt.Println(string(data))
}
