package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/sdm/internal/config"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to SigNoz and save the access token",
	Long:  `Authenticates against the SigNoz API with email and password and stores the returned JWT token for later commands.`,
	Run:   runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address (or SIGNOZ_EMAIL env)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (or SIGNOZ_PASSWORD env)")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) {
	email := loginEmail
	if email == "" {
		email = os.Getenv("SIGNOZ_EMAIL")
	}
	password := loginPassword
	if password == "" {
		password = os.Getenv("SIGNOZ_PASSWORD")
	}

	if email == "" || password == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			fmt.Println(errorStyle.Render("email and password are required: pass --email/--password or set SIGNOZ_EMAIL/SIGNOZ_PASSWORD"))
			os.Exit(1)
		}
		var err error
		email, password, err = runLoginForm(email, password)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			os.Exit(1)
		}
	}

	client, err := newAPIClient(false)
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	var token string
	var loginErr error
	action := func() {
		token, loginErr = client.Login(ctx, email, password)
	}
	if err := spinner.New().Title("Logging in...").Action(action).Run(); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
	if loginErr != nil {
		fmt.Println(errorStyle.Render(loginErr.Error()))
		os.Exit(1)
	}

	path, err := config.Path()
	if err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}
	cfg := &config.Config{
		URL:       client.BaseURL,
		Email:     email,
		Token:     token,
		LastLogin: time.Now().Format(time.RFC3339),
	}
	if err := config.Save(path, cfg); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("saving config: %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("Login successful!"))
	fmt.Println(infoStyle.Render(fmt.Sprintf("Token saved to %s", path)))
	fmt.Println(infoStyle.Render("You can now use other commands without providing a token"))
}

// runLoginForm asks for any missing credentials interactively.
func runLoginForm(email, password string) (string, string, error) {
	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("user@example.com").
			Value(&email))
	}
	if password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return "", "", fmt.Errorf("login form: %w", err)
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}
