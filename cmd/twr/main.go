package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/twreport/internal/config"
	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/report"
	"github.com/Zuo-Peng/twreport/internal/stats"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "twr",
		Short: "Timewarrior report extension - summaries over the report payload on stdin",
		Long: `twr is a Timewarrior report extension. Link it into
~/.timewarrior/extensions/ and run reports through timew:

  timew report twr summary
  timew report twr sessions --tag work

Each command reads the report payload (config header, blank line, JSON
session array) from stdin.`,
		Version: version,
	}

	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(tagsCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadReport reads the payload from the command's stdin, converting
// timestamps into the configured zone.
func loadReport(cmd *cobra.Command) (*report.Report, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	rep, err := report.FromReaderIn(cmd.InOrStdin(), loc)
	if err != nil {
		return nil, nil, err
	}
	return rep, cfg, nil
}

// renderOpts styles output for a terminal and leaves pipes plain.
func renderOpts(cfg *config.Config) render.Options {
	opts := render.Options{OpenMarker: cfg.OpenMarker}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts.Color = true
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width = w
		}
	}
	return opts
}

func addFilterFlags(cmd *cobra.Command, opts *stats.Options) {
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Only sessions carrying this tag")
	cmd.Flags().StringVar(&opts.Day, "day", "", "Only sessions starting on this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.OpenOnly, "open", false, "Only open sessions")
}
