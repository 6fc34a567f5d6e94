package cmd

import (
	"fmt"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

var suggestTab string

// suggestCmd represents the suggest command.
var suggestCmd = &cobra.Command{
	Use:   "suggest <tag>",
	Short: "Show the suggested accounts of a tag",
	Long: `Show the accounts suggested for a tag: the catalog's list when the
tag is declared there, otherwise the accounts most often recorded with it.
On the recurring plane the tag is the recurring item key.

Example:
  desc-editor suggest --tab travel Taxi
  desc-editor suggest --tab recurring water`,
	Args: cobra.ExactArgs(1),
	Run:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestTab, "tab", "general", "Plane (general, travel, bus, recurring)")
}

func runSuggest(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	tab, err := description.ParseTab(suggestTab)
	exitOnError(err, "invalid --tab")

	accounts, err := env.suggester().SuggestAccounts(tab, args[0])
	exitOnError(err, "failed to suggest accounts")

	if len(accounts) == 0 {
		fmt.Println("No suggested accounts")
		return
	}
	for _, account := range accounts {
		fmt.Println(account)
	}
}
