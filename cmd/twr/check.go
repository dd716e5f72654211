package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/report"
	"github.com/Zuo-Peng/twreport/internal/stats"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Self-check: parse stdin and show what was understood",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			rep, cfg, err := loadReport(cmd)
			if err != nil {
				fmt.Fprintln(out, "=== Parse ===")
				switch {
				case errors.Is(err, report.ErrMalformedInput):
					fmt.Fprintln(out, "  Status: MALFORMED INPUT")
				case errors.Is(err, report.ErrDecode):
					fmt.Fprintln(out, "  Status: DECODE FAILURE")
				case errors.Is(err, report.ErrRead):
					fmt.Fprintln(out, "  Status: READ FAILURE")
				default:
					fmt.Fprintln(out, "  Status: ERROR")
				}
				return err
			}

			fmt.Fprintln(out, "=== Parse ===")
			fmt.Fprintln(out, "  Status: OK")
			fmt.Fprintf(out, "  Config entries: %d\n", len(rep.Config))
			fmt.Fprintf(out, "  Sessions: %d\n", len(rep.Sessions))

			fmt.Fprintln(out, "\n=== Sessions ===")
			open, untagged, annotated := 0, 0, 0
			for _, s := range rep.Sessions {
				if s.Open() {
					open++
				}
				if len(s.Tags) == 0 {
					untagged++
				}
				if s.Annotation != nil {
					annotated++
				}
			}
			fmt.Fprintf(out, "  Open: %d\n", open)
			fmt.Fprintf(out, "  Untagged: %d\n", untagged)
			fmt.Fprintf(out, "  Annotated: %d\n", annotated)

			if first, last, ok := stats.Span(rep.Sessions); ok {
				fmt.Fprintf(out, "  First start: %s\n", first.Format("2006-01-02 15:04:05"))
				if !last.IsZero() {
					fmt.Fprintf(out, "  Last end:    %s\n", last.Format("2006-01-02 15:04:05"))
				}
				fmt.Fprintf(out, "  Tracked: %s\n", render.FormatDuration(stats.Total(rep.Sessions, time.Now())))
			}

			fmt.Fprintln(out, "\n=== Timezone ===")
			loc, _ := cfg.Location()
			fmt.Fprintf(out, "  Storing timestamps in: %s\n", loc)

			return nil
		},
	}
}
