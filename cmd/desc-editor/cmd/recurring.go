package cmd

import (
	"fmt"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

// recurringCmd represents the recurring command.
var recurringCmd = &cobra.Command{
	Use:   "recurring",
	Short: "List recurring items rendered for a date",
	Long: `List the recurring items of the catalog with their descriptions
rendered for the reference month.

Example:
  desc-editor recurring
  desc-editor recurring --date 2024-01-10`,
	Args: cobra.NoArgs,
	Run:  runRecurring,
}

func init() {
	recurringCmd.Flags().StringVar(&refDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
}

func runRecurring(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	date, err := env.parseDate(refDate)
	exitOnError(err, "invalid --date")

	items := env.catalog.Recurring().Expand(date)
	if len(items) == 0 {
		fmt.Println("No recurring items configured")
		return
	}

	fmt.Printf("\n=== Recurring items for %s ===\n", date.Format("January 2006"))
	for _, item := range items {
		fmt.Printf("%-12s %s\n", item.Key, item.Text)
		accounts, _ := env.catalog.SuggestAccounts(description.TabRecurring, item.Key)
		for _, account := range accounts {
			fmt.Printf("%-12s   %s\n", "", account)
		}
	}
	fmt.Println()
}
