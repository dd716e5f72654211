package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/stats"
)

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Distinct tags with session counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, _, err := loadReport(cmd)
			if err != nil {
				return err
			}

			tags := stats.Tags(rep.Sessions)
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tags.")
				return nil
			}

			width := 0
			for _, tt := range tags {
				if len(tt.Tag) > width {
					width = len(tt.Tag)
				}
			}
			for _, tt := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s %d\n", width+2, tt.Tag, tt.Sessions)
			}
			return nil
		},
	}
}
