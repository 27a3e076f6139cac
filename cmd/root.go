package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gearplug/surveymonkey-go/config"
	"github.com/gearplug/surveymonkey-go/surveymonkey"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *surveymonkey.Client

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "smctl",
	Short: "A CLI for the SurveyMonkey v3 API",
	Long: `smctl is a CLI around the SurveyMonkey v3 API: complete the OAuth
authorization flow, browse surveys, pages and questions, export responses
and manage webhook subscriptions.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information displayed by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(surveysCmd)
	rootCmd.AddCommand(responsesCmd)
	rootCmd.AddCommand(webhooksCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the SurveyMonkey client. The access token may be empty until
	// the OAuth flow has been completed; the auth commands work without it.
	client, err = surveymonkey.New(
		cfg.Auth.ClientID,
		cfg.Auth.ClientSecret,
		cfg.Auth.RedirectURI,
		logger,
		surveymonkey.WithBaseURL(cfg.API.BaseURL),
		surveymonkey.WithTimeout(cfg.API.Timeout),
		surveymonkey.WithUserAgent(cfg.API.UserAgent),
		surveymonkey.WithAccessToken(cfg.Auth.AccessToken),
	)
	if err != nil {
		return fmt.Errorf("failed to create SurveyMonkey client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colors only on a real terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API connection and access token",
	Long:  `Test the connection to the SurveyMonkey API by fetching the authenticated user.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", client.BaseURL())

	ctx := context.Background()
	user, err := client.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch authenticated user: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nAccount:\n")
	fmt.Printf("- Username: %s\n", user.Username)
	fmt.Printf("- Email: %s\n", user.Email)
	if user.AccountType != "" {
		fmt.Printf("- Plan: %s\n", user.AccountType)
	}

	surveys, err := client.ListSurveys(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list surveys: %w", err)
	}
	fmt.Printf("- Total surveys: %d\n", surveys.Total)

	return nil
}
