// Package cmd provides CLI commands for desc-editor.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "desc-editor",
	Short: "Compose and parse journal entry descriptions",
	Long: `desc-editor composes journal entry line item descriptions from
structured fields and parses existing descriptions back into them.

It supports:
- General, travel, bus and recurring descriptions
- Repeat counts and notes on any description
- Suggested accounts from the catalog and from usage history
- A JSON HTTP service for form front ends

Example:
  desc-editor decode "Taxi—Station→Office×2"
  desc-editor encode --tab travel --tag Taxi --from Station --to Office
  desc-editor serve`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(recurringCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// cleanups run before exitOnError exits, since os.Exit skips deferred calls.
var cleanups []func()

// Helper function to register a cleanup to run on exit.
func onExit(fn func()) {
	cleanups = append(cleanups, fn)
}

// runCleanups runs the registered cleanups, most recent first, and forgets them.
func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		runCleanups()
		os.Exit(1)
	}
}
