package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codereadr/codereadr"
)

// vocabCmd represents the vocab command
var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List known sections and actions",
	Long: `List the sections and actions this client knows about.

The list is informational only. Values outside it are still sent to the API,
which decides whether they are valid.`,
	PersistentPreRunE: skipInit,
	RunE:              runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Sections:")
	for _, section := range codereadr.Sections {
		fmt.Fprintf(out, "  • %s\n", section)
	}

	fmt.Fprintln(out, "\nActions:")
	for _, action := range codereadr.Actions {
		fmt.Fprintf(out, "  • %s\n", action)
	}

	fmt.Fprintf(out, "\nTimestamps are reported in %s.\n", codereadr.APITimeZone)
	return nil
}
