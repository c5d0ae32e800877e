package main

import (
	"github.com/spf13/cobra"
)

func newDumpCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every clock node frequency.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.withSession(cmd, func(s *session) error {
				return s.ctl.Dump(cmd.OutOrStdout())
			})
		},
	}
}
