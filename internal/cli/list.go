package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sitegen-labs/sitegen/internal/site"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the site types that can be scaffolded",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a site type for display.
type listEntry struct {
	Number int    `json:"number"`
	Type   string `json:"type"`
	Label  string `json:"label"`
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []listEntry
	for i, t := range site.Types() {
		entries = append(entries, listEntry{
			Number: i + 1,
			Type:   string(t),
			Label:  t.DisplayName(),
		})
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling site types: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTYPE\tLABEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.Number, e.Type, e.Label)
	}
	return w.Flush()
}
