package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/jmylchreest/bookclean/internal/bookfile"
	"github.com/jmylchreest/bookclean/internal/logger"
	"github.com/jmylchreest/bookclean/pkg/cleaner"
	"github.com/jmylchreest/bookclean/pkg/cleaner/book"
)

// pipelineRun is the outcome of cleaning one input.
type pipelineRun struct {
	cleanerName string
	config      *book.Config
	result      *book.Result
}

// runPipeline reads input, applies the optional Unicode pass and then the
// book cleaner.
func runPipeline(ctx context.Context, store *bookfile.Store, input string) (*pipelineRun, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}
	logger.Debug("book cleaner config",
		"max_line_length", cfg.MaxLineLength,
		"min_repeat", cfg.MinRepeat,
		"bibliography_min_offset", cfg.BibliographyMinOffset,
		"verify_citations", cfg.VerifyCitations,
		"remove_toc", cfg.RemoveTOC)

	limit, err := maxInputSize()
	if err != nil {
		return nil, err
	}

	log := logger.With("input", input)

	text, err := store.Read(ctx, input)
	if err != nil {
		logger.Error("failed to read input", "location", input, "error", err)
		return nil, err
	}
	log.Debug("input loaded", "size", humanize.Bytes(uint64(len(text))))
	if limit > 0 && uint64(len(text)) > limit {
		return nil, fmt.Errorf("input %s is %s, above the %s limit",
			input, humanize.Bytes(uint64(len(text))), humanize.Bytes(limit))
	}

	var prep []cleaner.Cleaner
	if viper.GetBool("nfc") {
		prep = append(prep, cleaner.NewUnicode())
	}
	text, err = cleaner.NewChain(prep...).Clean(text)
	if err != nil {
		return nil, err
	}

	bc := book.New(cfg)
	name := bc.Name()
	if len(prep) > 0 {
		name = cleaner.NewChain(append(prep, bc)...).Name()
	}

	result := bc.CleanWithStats(text)
	s := result.Stats
	tocLines := 0
	if s.TOC != nil {
		tocLines = s.TOC.Len()
	}
	logger.Stage("detect").Debug("detection finished",
		"duration", s.DetectDuration,
		"repeated", len(s.RepeatedTexts),
		"bibliography_cutoff", s.BibliographyCutoff,
		"toc_lines", tocLines)
	for _, i := range s.RejectedHeadings {
		log.Warn("back-matter heading kept, no citations follow it", "line", i+1)
	}
	logger.Stage("filter").Debug("filtering finished",
		"duration", s.FilterDuration,
		"removed", s.TotalLinesRemoved()-s.LinesRemoved[book.ReasonBlank])
	logger.Stage("normalize").Debug("blank lines normalized",
		"duration", s.NormalizeDuration,
		"collapsed", s.LinesRemoved[book.ReasonBlank])
	if s.InputLines > 0 && s.OutputLines == 0 {
		logger.Warn("every line was removed", "input", input, "input_lines", s.InputLines)
	}

	return &pipelineRun{cleanerName: name, config: cfg, result: result}, nil
}

// maxInputSize parses the --max-input-size flag. Zero means unlimited.
func maxInputSize() (uint64, error) {
	raw := strings.TrimSpace(viper.GetString("max_input_size"))
	if raw == "" || raw == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid max-input-size %q: %w", raw, err)
	}
	return n, nil
}
