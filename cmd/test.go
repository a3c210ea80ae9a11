package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codereadr/codereadr"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection and API key",
	Long:  `Retrieve users with the configured API key to check that the CodeReadr API is reachable and accepts the key.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to CodeReadr at %s...\n", cfg.BaseURL)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := client.Ping(ctx); err != nil {
		if codereadr.IsAPIError(err) {
			fmt.Fprintln(out, "✗ The API rejected the request. Check api_key in your config.")
		}
		return fmt.Errorf("connection test failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")
	return nil
}
