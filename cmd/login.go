// ABOUTME: Login command for the acasa-adminctl CLI
// ABOUTME: Prompts for credentials and persists the admin bearer token

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/mylikerahul/acasa-adminctl/internal/config"
	"github.com/mylikerahul/acasa-adminctl/internal/token"
	"github.com/spf13/cobra"
)

var (
	loginEmail       string
	loginGoogleToken string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend as an admin",
	Long: `Log in to the Acasa backend and persist the admin bearer token.

Prompts for email and password unless a Google ID token is supplied
with --google-token.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runLogin(ctx); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Admin email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginGoogleToken, "google-token", "", "Google ID token for OAuth sign-in")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(ctx context.Context) int {
	c, store, err := newAPIClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	var tok string
	if loginGoogleToken != "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		tok, err = c.LoginWithGoogle(ctx, loginGoogleToken, cfg.OAuthClientID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
			return 1
		}
	} else {
		email, password, err := promptCredentials(loginEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		tok, err = c.Login(ctx, email, password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
			return 1
		}
	}

	claims, err := token.DecodeClaims(tok)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Login failed: backend returned an unreadable token")
		return 1
	}
	if claims.UserType != "admin" {
		fmt.Fprintln(os.Stderr, "Login failed: this account is not an admin")
		return 1
	}

	if err := store.SaveAdminToken(tok); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save credentials: %v\n", err)
		return 2
	}

	name := claims.Name
	if name == "" {
		name = claims.Email
	}
	fmt.Printf("Logged in as %s\n", name)
	return 0
}

// promptCredentials collects email and password, skipping the email
// prompt when it was passed as a flag
func promptCredentials(presetEmail string) (string, string, error) {
	email := strings.TrimSpace(presetEmail)
	var password string

	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Placeholder("admin@example.com").
			Value(&email))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	if err := form.Run(); err != nil {
		return "", "", err
	}

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}
