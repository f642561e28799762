package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jmylchreest/bookclean/pkg/cleaner/book"
)

// buildConfig starts from the selected preset and applies every threshold
// set by flag, environment or config file.
func buildConfig() (*book.Config, error) {
	var cfg *book.Config
	switch p := viper.GetString("preset"); p {
	case "", "default":
		cfg = book.DefaultConfig()
	case "thorough":
		cfg = book.PresetThorough()
	default:
		return nil, fmt.Errorf("unknown preset: %s", p)
	}

	if viper.IsSet("max_line_length") {
		cfg.MaxLineLength = viper.GetInt("max_line_length")
	}
	if viper.IsSet("min_repeat") {
		cfg.MinRepeat = viper.GetInt("min_repeat")
	}
	if viper.IsSet("bibliography_min_offset") {
		cfg.BibliographyMinOffset = viper.GetFloat64("bibliography_min_offset")
	}
	if viper.IsSet("bibliography_confident_offset") {
		cfg.BibliographyConfidentOffset = viper.GetFloat64("bibliography_confident_offset")
	}
	if viper.IsSet("verify_citations") {
		cfg.VerifyCitations = viper.GetBool("verify_citations")
	}
	if viper.IsSet("remove_toc") {
		cfg.RemoveTOC = viper.GetBool("remove_toc")
	}
	if viper.IsSet("toc_max_span") {
		cfg.TOCMaxSpan = viper.GetInt("toc_max_span")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
