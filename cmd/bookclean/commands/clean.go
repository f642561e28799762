package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/bookclean/internal/bookfile"
	"github.com/jmylchreest/bookclean/internal/logger"
	"github.com/jmylchreest/bookclean/internal/output"
)

var cleanCmd = &cobra.Command{
	Use:   "clean INPUT [OUTPUT]",
	Short: "Clean a book and write the result",
	Long: `Clean a plain-text book and write the result.

Without OUTPUT the cleaned text is written next to INPUT with "_cleaned"
inserted before the extension (book.txt -> book_cleaned.txt). INPUT and
OUTPUT may be local paths or any URL the storage layer understands
(file://, mem://).

Examples:
  bookclean clean book.txt
  bookclean clean book.txt clean/book.txt --report stats.json --report-format json
  bookclean clean book.txt --stdout | less`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.Bool("stdout", false, "write the cleaned text to stdout instead of a file")
	flags.String("report", "", "write a cleaning report to this location (- for stdout)")
	flags.String("report-format", "text", "report format: text, json, yaml")
}

func runClean(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	input := args[0]
	toStdout, _ := cmd.Flags().GetBool("stdout")
	reportPath, _ := cmd.Flags().GetString("report")
	formatStr, _ := cmd.Flags().GetString("report-format")

	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	var dest string
	switch {
	case len(args) == 2 && toStdout:
		return errors.New("OUTPUT cannot be combined with --stdout")
	case len(args) == 2:
		dest = args[1]
	case !toStdout:
		dest = bookfile.DeriveOutputPath(input)
	}

	store := bookfile.New()
	run, err := runPipeline(ctx, store, input)
	if err != nil {
		return err
	}

	content := run.result.Content
	if toStdout {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), content); err != nil {
			return fmt.Errorf("%w: %v", bookfile.ErrOutputFailed, err)
		}
		dest = "-"
	} else if err := store.Write(ctx, dest, content); err != nil {
		return err
	}

	s := run.result.Stats
	logger.Info("book cleaned",
		"input", input,
		"output", dest,
		"lines", fmt.Sprintf("%d -> %d", s.InputLines, s.OutputLines),
		"size", fmt.Sprintf("%s -> %s", humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes))),
		"reduction", fmt.Sprintf("%.1f%%", s.ReductionPercent()),
		"duration", s.TotalDuration)

	if reportPath == "" {
		return nil
	}

	report := output.NewReport(input, dest, run.cleanerName, run.config, s)
	if reportPath == "-" {
		w, err := output.NewWriter(cmd.OutOrStdout(), format)
		if err != nil {
			return err
		}
		return w.Write(report)
	}

	var buf bytes.Buffer
	w, err := output.NewWriter(&buf, format)
	if err != nil {
		return err
	}
	if err := w.Write(report); err != nil {
		return err
	}
	if err := store.Write(ctx, reportPath, buf.String()); err != nil {
		return err
	}
	logger.Debug("report written", "location", reportPath, "format", format)
	return nil
}
