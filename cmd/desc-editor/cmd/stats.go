package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display usage statistics",
	Long: `Display statistics about recorded descriptions.

Shows:
- Total number of recorded descriptions
- Number of descriptions per plane
- Last use timestamp

Example:
  desc-editor stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	slog.Debug("Reading usage history", "path", env.conn.GetPath())

	// Get statistics
	stats, err := env.history.GetStats()
	exitOnError(err, "failed to get statistics")

	// Display statistics
	fmt.Println("\n=== Usage Statistics ===")
	fmt.Printf("Total recorded:        %d\n", stats.Total)
	for _, tab := range description.Tabs() {
		fmt.Printf("  %-20s %d\n", tab.String()+":", stats.ByTab[tab])
	}

	if stats.LastUsed.Valid {
		fmt.Printf("Last used:             %s\n", stats.LastUsed.String)
	} else {
		fmt.Printf("Last used:             (never)\n")
	}

	fmt.Println()

	slog.Info("Statistics displayed successfully")
}
