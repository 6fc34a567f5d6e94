package cmd

import (
	"fmt"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

var (
	tagsTab  string
	tagLimit int
)

// tagsCmd represents the tags command.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags of a plane",
	Long: `List the tags the catalog offers on a plane, followed by the tags
used most often according to the usage history.

Example:
  desc-editor tags --tab travel
  desc-editor tags --tab general --limit 5`,
	Args: cobra.NoArgs,
	Run:  runTags,
}

func init() {
	tagsCmd.Flags().StringVar(&tagsTab, "tab", "", "Plane (general, travel, bus) (required)")
	tagsCmd.Flags().IntVar(&tagLimit, "limit", 10, "Number of frequent tags to show")

	tagsCmd.MarkFlagRequired("tab")
}

func runTags(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	tab, err := description.ParseTab(tagsTab)
	exitOnError(err, "invalid --tab")

	fmt.Printf("\n=== %s tags ===\n", tab)
	tags := env.catalog.Tags(tab)
	if len(tags) == 0 {
		fmt.Println("(none in catalog)")
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}

	frequent, err := env.history.TopTags(tab, tagLimit)
	exitOnError(err, "failed to get frequent tags")

	if len(frequent) > 0 {
		fmt.Println("\n=== Most used ===")
		for _, tc := range frequent {
			fmt.Printf("%-20s %d\n", tc.Tag, tc.Count)
		}
	}
	fmt.Println()
}
