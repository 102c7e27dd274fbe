package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/alvinbaena/pwd-strength/internal/strength"
	"github.com/alvinbaena/pwd-strength/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	batchCmd = &cobra.Command{
		Use:   "batch",
		Short: "Evaluate a file of passwords, one per line, and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCommand()
		},
	}

	batchMode string
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	batchCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "File with one password per line (required)")
	batchCmd.MarkFlagRequired("in-file")
	batchCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of workers. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	batchCmd.Flags().StringVarP(&batchMode, "strategy", "s", "", "Strategies to evaluate with, rules, zxcvbn or hybrid. Defaults to the configured strategy")

	rootCmd.AddCommand(batchCmd)
}

func batchCommand() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer util.Stats()()

	mode := strength.Mode(cfg.Strategy)
	if batchMode != "" {
		mode = strength.Mode(batchMode)
	}
	pair, err := strength.ForMode(mode, strength.Settings{CommonPasswordsFile: cfg.CommonPasswords})
	if err != nil {
		return err
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing passwords file")
		}
	}(file)

	passwords, err := readLines(file)
	if err != nil {
		return err
	}
	log.Debug().Msgf("read %d passwords from %s", len(passwords), inputFile)

	report, err := strength.EvaluateBatch(passwords, pair, threads)
	if err != nil {
		return err
	}

	printReport(os.Stdout, report, mode)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func printReport(w io.Writer, report strength.Report, mode strength.Mode) {
	p := message.NewPrinter(language.English)

	_, _ = p.Fprintf(w, "Evaluated %d passwords with the %s strategies\n", report.Total, mode)
	for _, tier := range strength.TierOrder {
		if n, ok := report.Tiers[tier]; ok {
			_, _ = p.Fprintf(w, "  %-12s %d\n", tier, n)
		}
	}
	if report.Total == 0 {
		return
	}

	_, _ = p.Fprintf(w, "Brute force time to crack\n")
	_, _ = p.Fprintf(w, "  min     %s\n", strength.FormatLog10Seconds(report.MinLog10Seconds))
	_, _ = p.Fprintf(w, "  median  %s\n", strength.FormatLog10Seconds(report.MedianLog10Seconds))
	_, _ = p.Fprintf(w, "  max     %s\n", strength.FormatLog10Seconds(report.MaxLog10Seconds))
}
