package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/codereadr/codereadr"
	"github.com/s0up4200/codereadr/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   = zerolog.Nop()
	client   codereadr.API
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codereadr",
	Short: "A command line client for the CodeReadr API",
	Long: `codereadr sends section/action requests to the CodeReadr API and prints
the XML documents it returns.

Responses can be narrowed to repeated elements (users, devices, services)
and filtered with expressions, for example:

  codereadr request users retrieve --element user --filter 'username~"gate"'`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	client = codereadr.NewClient(cfg.APIKey, logger,
		codereadr.WithBaseURL(cfg.BaseURL),
		codereadr.WithTimeout(cfg.Timeout),
		codereadr.WithUserAgent(cfg.UserAgent),
	)

	return nil
}

// skipInit replaces initializeApp for commands that need no config
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	return zerolog.New(consoleWriter(out, cfg.Color && isTerminal(out))).With().Timestamp().Logger()
}

func consoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
