package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codereadr/codereadr"
	"github.com/s0up4200/codereadr/filter"
)

var (
	elementPath string
	filterExpr  string
	preset      string
)

// requestCmd represents the request command
var requestCmd = &cobra.Command{
	Use:   "request <section> <action> [key=value...]",
	Short: "Send a section/action request and print the response",
	Long: `Send a request to the CodeReadr API and print the returned XML document.

Extra arguments are sent as form fields. A field named api_key, section or
action replaces the value the client would send.

With --element the matching elements are printed as records instead, and
--filter or --preset narrows them down:

  codereadr request devices retrieve --element device --filter 'num(id) > 300'
  codereadr request users retrieve --element user --preset inactive`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRequest,
}

func init() {
	rootCmd.AddCommand(requestCmd)

	requestCmd.Flags().StringVarP(&elementPath, "element", "e", "", "print records for elements matching this path (e.g. user or .//device)")
	requestCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to records")
	requestCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runRequest(cmd *cobra.Command, args []string) error {
	section := codereadr.Section(args[0])
	action := codereadr.Action(args[1])

	if !section.Known() {
		logger.Warn().Str("section", section.String()).Msg("Unknown section, sending anyway")
	}
	if !action.Known() {
		logger.Warn().Str("action", action.String()).Msg("Unknown action, sending anyway")
	}

	params, err := parseParams(args[2:])
	if err != nil {
		return err
	}

	if elementPath == "" && (filterExpr != "" || preset != "") {
		return fmt.Errorf("--filter and --preset require --element")
	}
	if filterExpr != "" && preset != "" {
		return fmt.Errorf("--filter and --preset cannot be combined")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := client.Request(ctx, section, action, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if elementPath == "" {
		data, err := resp.Bytes()
		if err != nil {
			return fmt.Errorf("failed to format response: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	records, err := filter.RecordsOf(resp, elementPath)
	if err != nil {
		return err
	}

	matched, err := selectRecords(records, filterExpr, preset, cfg.Filter.Presets)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("records", len(records)).
		Int("matched", len(matched)).
		Msg("Filtered response records")

	printRecords(out, matched)
	return nil
}

// parseParams turns key=value arguments into form values. Repeated keys
// are sent repeatedly.
func parseParams(args []string) (url.Values, error) {
	params := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid parameter '%s': expected key=value", arg)
		}
		params.Add(strings.TrimSpace(key), value)
	}
	return params, nil
}

// selectRecords applies either a filter expression or a named preset.
// With neither, every record is returned.
func selectRecords(records []filter.Record, expression, presetName string, presets map[string]string) ([]filter.Record, error) {
	if presetName != "" {
		expr, ok := presets[presetName]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", presetName)
		}

		m := filter.NewManager()
		if err := m.RegisterFilter(presetName, expr); err != nil {
			return nil, err
		}
		return m.EvaluateFilter(presetName, records)
	}

	match, err := filter.ParseAndCreateFilter(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return filter.Apply(records, match), nil
}

func printRecords(out io.Writer, records []filter.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No records found matching the filter criteria.")
		return
	}

	fmt.Fprintf(out, "Found %d record", len(records))
	if len(records) != 1 {
		fmt.Fprint(out, "s")
	}
	fmt.Fprintln(out, ":")
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, record := range records {
		fmt.Fprintf(out, "• %s\n", recordLabel(record))
		for _, key := range record.Keys() {
			if key == "id" {
				continue
			}
			fmt.Fprintf(out, "  %s: %s\n", key, formatValue(record[key]))
		}
	}
}

func recordLabel(record filter.Record) string {
	if id := record.ID(); id != "" {
		return "id " + id
	}
	return "(no id)"
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []any:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	case filter.Record:
		parts := make([]string, 0, len(value))
		for _, key := range value.Keys() {
			parts = append(parts, key+"="+formatValue(value[key]))
		}
		return "{" + strings.Join(parts, " ") + "}"
	default:
		return fmt.Sprint(value)
	}
}
