package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/stats"
)

func summaryCmd() *cobra.Command {
	var opts stats.Options
	var limit int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Per-tag time totals for the report on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, cfg, err := loadReport(cmd)
			if err != nil {
				return err
			}

			sessions := stats.Filter(rep.Sessions, opts)
			now := time.Now()
			totals := stats.TagTotals(sessions, now)

			if limit == 0 {
				limit = cfg.Limit
			}
			if limit > 0 && len(totals) > limit {
				totals = totals[:limit]
			}

			render.TagSummary(cmd.OutOrStdout(), totals, stats.Total(sessions, now), renderOpts(cfg))
			return nil
		},
	}

	addFilterFlags(cmd, &opts)
	cmd.Flags().IntVar(&limit, "limit", 0, "Max tags shown (0 = config default)")

	return cmd
}
