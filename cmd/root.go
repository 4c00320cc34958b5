package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	rootURL     string
	rootToken   string
	rootTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "sdm",
	Short: "SigNoz dashboard manager",
	Long:  `sdm is a CLI tool for managing SigNoz dashboards: login, list, add, and delete.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(logo)
		_ = cmd.Usage()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootURL, "url", "u", "", "SigNoz API URL (or SIGNOZ_URL env, default http://localhost:3301)")
	rootCmd.PersistentFlags().StringVarP(&rootToken, "token", "t", "", "Authentication token (or SIGNOZ_TOKEN env, optional if logged in)")
	rootCmd.PersistentFlags().DurationVar(&rootTimeout, "timeout", 30*time.Second, "HTTP timeout for API calls")
}
