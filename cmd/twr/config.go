package main

import (
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/render"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Dump the report's config header as key/value pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, _, err := loadReport(cmd)
			if err != nil {
				return err
			}
			render.ConfigTable(cmd.OutOrStdout(), rep.Config)
			return nil
		},
	}
}
