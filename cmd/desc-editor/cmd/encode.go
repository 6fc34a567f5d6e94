package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shunichi-ikebuchi/description-editor/pkg/description"
	"github.com/spf13/cobra"
)

var (
	draft       description.Draft
	encodeTab   string
	quantity    int
	note        string
	accountCode string
	record      bool
)

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Compose a description from editor fields",
	Long: `Compose a description from the fields of one plane, validate it
and print it. With --record the description is stored in the usage
history so its tag and account are suggested next time.

Required fields:
- travel: --tag, --from, --to
- bus:    --tag, --route, --from, --to

Example:
  desc-editor encode --tab travel --tag Flight --from Taipei --to Tokyo --direction round-trip
  desc-editor encode --tab bus --tag Bus --route 307 --from Station --to Office --quantity 2
  desc-editor encode --tab recurring --key water --date 2024-03-15 --record`,
	Run: runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeTab, "tab", "general", "Plane (general, travel, bus, recurring)")
	encodeCmd.Flags().StringVar(&draft.Tag, "tag", "", "Tag")
	encodeCmd.Flags().StringVar(&draft.Text, "text", "", "Free text (general)")
	encodeCmd.Flags().StringVar(&draft.From, "from", "", "Origin (travel, bus)")
	encodeCmd.Flags().StringVar(&draft.To, "to", "", "Destination (travel, bus)")
	encodeCmd.Flags().StringVar(&draft.Direction, "direction", "one-way", "Direction (one-way, round-trip)")
	encodeCmd.Flags().StringVar(&draft.Route, "route", "", "Bus route")
	encodeCmd.Flags().StringVar(&draft.Key, "key", "", "Recurring item key")
	encodeCmd.Flags().IntVar(&quantity, "quantity", 0, "Repeat count (shown when greater than 1)")
	encodeCmd.Flags().StringVar(&note, "note", "", "Note")
	encodeCmd.Flags().StringVar(&accountCode, "account", "", "Account code (default is the first suggestion)")
	encodeCmd.Flags().StringVar(&refDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
	encodeCmd.Flags().StringVar(&sideName, "side", "debit", "Line item side (debit or credit)")
	encodeCmd.Flags().BoolVar(&record, "record", false, "Record the description in the usage history")
}

func runEncode(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	var err error
	draft.Tab, err = description.ParseTab(encodeTab)
	exitOnError(err, "invalid --tab")
	date, err := env.parseDate(refDate)
	exitOnError(err, "invalid --date")
	side, err := description.ParseSide(sideName)
	exitOnError(err, "invalid --side")

	editor := env.newEditor(side)
	editor.SetDate(date)
	exitOnError(editor.Fill(draft), "invalid fields")
	editor.SetAnnotation(description.Annotation{Quantity: quantity, Note: note})
	if accountCode != "" {
		editor.SelectAccount(env.catalog.Account(accountCode))
	}

	result, err := editor.Submit()
	var validationErrs description.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fmt.Fprintf(os.Stderr, "--%s: %s\n", fe.Field, fe.Message)
		}
	}
	exitOnError(err, "invalid description")

	fmt.Println(result.Description)
	if result.Account != nil {
		fmt.Printf("Account: %s\n", result.Account)
	}

	if record {
		exitOnError(env.history.RecordResult(result), "failed to record usage")
		slog.Info("Recorded usage", "side", result.Side, "tab", result.Tab, "tag", result.Tag)
	}
}
