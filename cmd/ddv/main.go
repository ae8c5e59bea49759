package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/willibrandon/ddv/internal/app"
	"github.com/willibrandon/ddv/internal/config"
	"github.com/willibrandon/ddv/internal/dynamo"
	"github.com/willibrandon/ddv/internal/logger"
	"github.com/willibrandon/ddv/internal/ui"
)

var (
	// Flags
	region      string
	endpointURL string
	profile     string
	configPath  string
	debug       bool
)

// errReported is returned once a client error has been printed
var errReported = errors.New("client error")

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddv",
		Short: ui.AppDescription,
		Long: `ddv is a terminal viewer for Amazon DynamoDB tables.

It lists the tables of an account, shows their descriptions, scans items
into a scrollable table and lets you inspect, copy and delete single items.

Examples:
  ddv                                  Use the default profile and region
  ddv --profile dev --region eu-west-1 Use a named profile
  ddv --endpoint-url http://localhost:8000
                                       Connect to DynamoDB Local`,
		Version:       ui.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region")
	rootCmd.Flags().StringVarP(&endpointURL, "endpoint-url", "e", "", "DynamoDB endpoint URL")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS shared config profile")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/ddv/config.yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errReported) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("ddv must be run in an interactive terminal")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags take precedence over the config file and environment
	if cmd.Flags().Changed("region") {
		cfg.AWS.Region = region
	}
	if cmd.Flags().Changed("endpoint-url") {
		cfg.AWS.EndpointURL = endpointURL
	}
	if cmd.Flags().Changed("profile") {
		cfg.AWS.Profile = profile
	}
	if debug {
		cfg.Debug = true
	}

	if err := logger.Init(cfg.Debug, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()
	logger.Info("Starting ddv", "version", ui.Version, "log_file", logger.LogPath)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AWS.RequestTimeout)
	client, err := dynamo.NewClient(ctx, cfg.AWS)
	cancel()
	if err != nil {
		printClientError(err)
		return errReported
	}

	cb := ui.NewClipboardWriter()
	if !cb.IsAvailable() {
		logger.Warn("Clipboard unavailable, copy actions will fail")
	}

	p := tea.NewProgram(
		app.New(cfg, client, cb),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := finalModel.(app.Model); ok && m.Err() != nil {
		logger.Error("Exited after client error", "error", m.Err())
		printClientError(m.Err())
		return errReported
	}
	return nil
}

func printClientError(err error) {
	fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint(app.FormatClientError(err)))
}
