// Package commands implements the CLI commands for bookclean.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/bookclean/internal/logger"
	"github.com/jmylchreest/bookclean/pkg/cleaner/book"
)

var rootCmd = &cobra.Command{
	Use:   "bookclean",
	Short: "Strip page furniture and back matter from digitized books",
	Long: `Bookclean removes page numbers, running headers and footers, separators,
ISBN and publisher boilerplate and trailing bibliography sections from
plain-text books, then normalizes blank lines.

Examples:
  # Clean a book, writing book_cleaned.txt next to it
  bookclean clean book.txt

  # Explicit output and a stricter header threshold
  bookclean clean book.txt out.txt --min-repeat 5

  # Also drop the table of contents and print a JSON report
  bookclean clean book.txt --toc --report - --report-format json

  # See what would be removed without writing anything
  bookclean inspect book.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.String("config", "", "config file (default $HOME/.bookclean.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "log as JSON")

	// Heuristics
	flags.String("preset", "default", "threshold preset: default, thorough")
	flags.Int("max-line-length", book.DefaultMaxLineLength, "longest line (runes) treated as a header/footer candidate")
	flags.Int("min-repeat", book.DefaultMinRepeat, "occurrences at which a short line is a running header/footer")
	flags.Float64("bibliography-offset", book.DefaultBibliographyMinOffset, "fraction of the book before which bibliography headings are ignored")
	flags.Float64("confident-offset", book.DefaultBibliographyConfidentOffset, "fraction after which headings need no citation evidence")
	flags.Bool("verify-citations", false, "require citations after mid-book bibliography headings")
	flags.Bool("toc", false, "remove the table of contents")
	flags.Int("toc-max-span", book.DefaultTOCMaxSpan, "maximum lines a table of contents may span")
	flags.Bool("nfc", true, "normalize Unicode to NFC and drop invisible characters before cleaning")
	flags.String("max-input-size", "0", "refuse inputs larger than this (e.g. 50MB, 0=unlimited)")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = viper.BindPFlag("preset", flags.Lookup("preset"))
	_ = viper.BindPFlag("max_line_length", flags.Lookup("max-line-length"))
	_ = viper.BindPFlag("min_repeat", flags.Lookup("min-repeat"))
	_ = viper.BindPFlag("bibliography_min_offset", flags.Lookup("bibliography-offset"))
	_ = viper.BindPFlag("bibliography_confident_offset", flags.Lookup("confident-offset"))
	_ = viper.BindPFlag("verify_citations", flags.Lookup("verify-citations"))
	_ = viper.BindPFlag("remove_toc", flags.Lookup("toc"))
	_ = viper.BindPFlag("toc_max_span", flags.Lookup("toc-max-span"))
	_ = viper.BindPFlag("nfc", flags.Lookup("nfc"))
	_ = viper.BindPFlag("max_input_size", flags.Lookup("max-input-size"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".bookclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("BOOKCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}

// initLogger configures logging from the global flags.
func initLogger() {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
