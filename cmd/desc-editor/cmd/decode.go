package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

var (
	refDate  string
	sideName string
)

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode <description>",
	Short: "Parse a description into editor fields",
	Long: `Parse an existing description into the fields of the plane that
claims it, and show the suggested accounts of its tag.

Recurring items are matched against their text for the reference month,
so the same description may decode differently under another --date.

Example:
  desc-editor decode "Bus—307—Station→Office"
  desc-editor decode "Water January-February" --date 2024-03-15`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&refDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
	decodeCmd.Flags().StringVar(&sideName, "side", "debit", "Line item side (debit or credit)")
}

func runDecode(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	date, err := env.parseDate(refDate)
	exitOnError(err, "invalid --date")
	side, err := description.ParseSide(sideName)
	exitOnError(err, "invalid --side")

	editor := env.newEditor(side)
	decoded := editor.Open(args[0], date)
	slog.Debug("Decoded description", "tab", decoded.Tab, "tag", decoded.Tag())

	printDecoded(os.Stdout, decoded, editor.Suggestions())
}

func printDecoded(w io.Writer, decoded description.Decoded, suggestions []description.Account) {
	fmt.Fprintf(w, "Tab:         %s\n", decoded.Tab)
	for _, line := range fieldLines(decoded.Fields) {
		fmt.Fprintf(w, "%-12s %s\n", line[0]+":", line[1])
	}

	if decoded.Annotation.Quantity > 1 {
		fmt.Fprintf(w, "Quantity:    %d\n", decoded.Annotation.Quantity)
	}
	if decoded.Annotation.Note != "" {
		fmt.Fprintf(w, "Note:        %s\n", decoded.Annotation.Note)
	}

	if len(suggestions) == 0 {
		fmt.Fprintf(w, "Accounts:    (none)\n")
		return
	}
	for i, account := range suggestions {
		label := ""
		if i == 0 {
			label = "Accounts:"
		}
		fmt.Fprintf(w, "%-12s %s\n", label, account)
	}
}

// fieldLines lists the labelled fields of a plane in display order.
func fieldLines(fields description.Fields) [][2]string {
	switch f := fields.(type) {
	case description.GeneralFields:
		return [][2]string{{"Tag", f.Tag}, {"Text", f.Text}}
	case description.TravelFields:
		return [][2]string{{"Tag", f.Tag}, {"From", f.From}, {"To", f.To}, {"Direction", f.Direction.Name()}}
	case description.BusFields:
		return [][2]string{{"Tag", f.Tag}, {"Route", f.Route}, {"From", f.From}, {"To", f.To}}
	case description.RecurringFields:
		return [][2]string{{"Key", f.Key}, {"Text", f.Text}}
	}
	return nil
}
