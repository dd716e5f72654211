package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/stats"
)

func sessionsCmd() *cobra.Command {
	var opts stats.Options
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List tracked sessions in id order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, cfg, err := loadReport(cmd)
			if err != nil {
				return err
			}

			sessions := stats.Filter(rep.Sessions, opts)
			stats.SortByID(sessions)

			if limit == 0 {
				limit = cfg.Limit
			}
			if limit > 0 && len(sessions) > limit {
				sessions = sessions[:limit]
			}

			render.Sessions(cmd.OutOrStdout(), sessions, time.Now(), renderOpts(cfg))
			return nil
		},
	}

	addFilterFlags(cmd, &opts)
	cmd.Flags().IntVar(&limit, "limit", 0, "Max rows (0 = config default)")

	return cmd
}
