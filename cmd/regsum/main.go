// Command regsum extracts numbered sections from a regulations text file,
// derives a summary per section, and writes the results to a CSV or JSON
// file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coolbeans/regsum/pkg/requirements"
	"github.com/coolbeans/regsum/pkg/serialize"
	"github.com/coolbeans/regsum/pkg/summarize"
)

var version = "0.1.0"

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd := &cobra.Command{
		Use:   "regsum",
		Short: "Regulation section extractor and summarizer",
		Long: `Regsum splits a flat regulations text file into marker-delimited
sections and produces a per-section summary.

Each section starts at an occurrence of the section marker (default
"Section") and runs to the next occurrence or the end of the document.
For every section regsum extracts the section number, derives a summary,
and writes one record to a CSV or JSON output file.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads optional configuration from regsum.yaml (current
// directory or ~/.config/regsum/) and the REGSUM_* environment, and sets
// the built-in defaults. Flags override both.
func initConfig() {
	viper.SetConfigName("regsum")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "regsum"))
	}

	viper.SetEnvPrefix("REGSUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("input", "regulations.txt")
	viper.SetDefault("output", "extracted_requirements.json")
	viper.SetDefault("marker", "Section")
	viper.SetDefault("pattern", "")
	viper.SetDefault("log-level", "info")

	// Config file is optional.
	_ = viper.ReadInConfig()
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract sections from a regulations file and summarize each one",
		Long: `Extract splits a regulations text file into marker-delimited sections,
extracts each section's number, derives a summary per section, and writes
one record per section to the output file.

The output format is selected by the output file's extension (.csv or
.json). The section number is matched with a regular expression whose
first capturing group holds the digits; when --pattern is not given, the
pattern is derived from the marker (marker, one space, 1-2 digits).

Example:
  regsum extract
  regsum extract --input regulations.txt --output requirements.csv
  regsum extract --marker Article --output articles.json --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := stringSetting(cmd, "input")
			output := stringSetting(cmd, "output")
			marker := stringSetting(cmd, "marker")
			pattern := stringSetting(cmd, "pattern")
			showStats, _ := cmd.Flags().GetBool("stats")

			logger, err := newLogger(stringSetting(cmd, "log-level"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runExtract(logger, input, output, marker, pattern, showStats)
		},
	}

	cmd.Flags().String("input", "", "path to the regulations text file")
	cmd.Flags().String("output", "", "path to the output file (.csv or .json)")
	cmd.Flags().String("marker", "", "keyword that starts a new section")
	cmd.Flags().String("pattern", "", "regular expression capturing the section number")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().Bool("stats", false, "print extraction statistics")

	return cmd
}

// runExtract validates the run's preconditions, then executes the pipeline:
// read the document, extract and summarize sections, write the output file.
// Precondition failures abort before any output is produced or touched.
func runExtract(logger *zap.Logger, inputPath, outputPath, marker, patternExpr string, showStats bool) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file %q was not found: %w", inputPath, err)
	}
	if _, err := serialize.DetectFormat(outputPath); err != nil {
		return err
	}

	if patternExpr == "" {
		patternExpr = requirements.NumberPatternFor(marker)
	}
	pattern, err := requirements.NewNumberPattern(patternExpr)
	if err != nil {
		return err
	}

	logger.Info("input parameters checked",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.String("marker", marker))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	extractor := requirements.NewExtractor(marker, pattern, summarize.NewSimulated())
	records, report, err := extractor.Extract(string(data))
	if err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		logger.Warn(warning)
	}
	if report.SectionCount > 0 {
		logger.Info("sections extracted",
			zap.Int("sections", report.SectionCount),
			zap.Int("numbered", report.NumberedSections))
	}

	if err := serialize.WriteFile(outputPath, records); err != nil {
		return err
	}
	logger.Info("results written", zap.String("path", outputPath))

	if showStats {
		fmt.Printf("\nExtraction statistics:\n")
		fmt.Printf("  Sections:          %d\n", report.SectionCount)
		fmt.Printf("  Numbered sections: %d\n", report.NumberedSections)
		fmt.Printf("  Missing numbers:   %d\n", len(report.MissingNumbers))
	}

	return nil
}

// stringSetting resolves a string setting: an explicitly set flag wins,
// otherwise the viper value (env, config file, or default).
func stringSetting(cmd *cobra.Command, name string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return viper.GetString(name)
}

// newLogger builds a leveled console logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		parsed,
	)
	return zap.New(core), nil
}
