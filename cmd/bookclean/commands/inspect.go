package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/bookclean/internal/bookfile"
	"github.com/jmylchreest/bookclean/internal/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect INPUT",
	Short: "Report what cleaning would remove without writing anything",
	Long: `Run the cleaner over INPUT and print the report only.

The report lists removals per rule, the detected running headers and
footers, where back matter starts and, with --toc, the table of contents.

Examples:
  bookclean inspect book.txt
  bookclean inspect book.txt --format yaml --min-repeat 5`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("format", "f", "text", "report format: text, json, yaml")
}

func runInspect(cmd *cobra.Command, args []string) error {
	initLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	run, err := runPipeline(ctx, bookfile.New(), args[0])
	if err != nil {
		return err
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	return w.Write(output.NewReport(args[0], "", run.cleanerName, run.config, run.result.Stats))
}
