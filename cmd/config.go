package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stuttgart-things/sdm/internal/config"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show the saved configuration",
	Long:    `Displays the saved SigNoz URL, login email, and token state from the config file.`,
	Run:     runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	path, err := config.Path()
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error loading config: %v", err)))
		os.Exit(1)
	}

	if cfg.IsEmpty() {
		fmt.Println(warningStyle.Render("No configuration found. Please login first."))
		return
	}

	printConfig(cfg, path)
}

func printConfig(cfg *config.Config, path string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "URL\t%s\n", valueOr(cfg.URL, "Not set"))
	fmt.Fprintf(w, "Email\t%s\n", valueOr(cfg.Email, "Not set"))
	fmt.Fprintf(w, "Last Login\t%s\n", valueOr(cfg.LastLogin, "Never"))
	fmt.Fprintf(w, "Token\t%s\n", truncateToken(cfg.Token))
	fmt.Fprintf(w, "Config Location\t%s\n", path)
	w.Flush()
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func truncateToken(token string) string {
	if token == "" {
		return "Not set"
	}
	if len(token) <= 20 {
		return token + "... (truncated)"
	}
	return token[:20] + "... (truncated)"
}
