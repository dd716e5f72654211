package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/twreport/internal/report"
	"github.com/Zuo-Peng/twreport/internal/stats"
	"github.com/Zuo-Peng/twreport/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse the report's sessions",
		Long: `Opens a TUI over the parsed sessions: type to filter by tag or
annotation, arrow keys to move, esc to quit. Stdin carries the report,
so stdout must be a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("browse needs a terminal on stdout")
			}

			rep, cfg, err := loadReport(cmd)
			if err != nil {
				return err
			}

			sessions := append([]report.Session(nil), rep.Sessions...)
			stats.SortByID(sessions)

			// stdin carried the report; read keys from the terminal
			tty, err := os.Open("/dev/tty")
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer tty.Close()

			return tui.Run(sessions, time.Now(), cfg.OpenMarker, tty)
		},
	}
}
