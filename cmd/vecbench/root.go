package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/veckit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	locale  string
)

var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Benchmark and demonstrate allocator-aware vectors",
	Long: `vecbench exercises the veckit vector: it times bulk insertion for
relocatable and hook-carrying element types on each allocator, and replays
the reference insert/erase/assign scenarios.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logOptions())
	},
}

// logOptions maps the global flags to logger options. A VECKIT_LOG_*
// toggle keeps logging on even without --verbose.
func logOptions() logger.Options {
	return logger.Options{
		Enabled: (verbose && !quiet) || logger.Growth || logger.Alloc,
		Level:   slog.LevelDebug,
		JSON:    jsonOut,
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "en", "Locale for number formatting (BCP 47 tag)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printer returns a number-aware printer for the --locale flag.
// Unparseable tags fall back to English.
func printer() *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		printVerbose("unknown locale %q, using en\n", locale)
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		printer().Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
