package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/drivers/sf32lb52/syscfg"
	"clocktree-go/x/critical"
)

func newModeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the DVFS mode, rail and chip identity.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.withSession(cmd, func(s *session) error {
				var (
					hclk string
					high bool
				)
				err := critical.With(func(cs critical.Token) error {
					f, err := s.ctl.FreqCS(cs, rcc.HCLK)
					if err != nil {
						return err
					}
					hclk = rcc.FormatMHz(f)
					high, err = syscfg.IsHighRail(cs, s.hw)
					return err
				})
				if err != nil {
					return err
				}
				m, err := s.ctl.Mode()
				if err != nil {
					return err
				}
				rail := "ldo"
				if high {
					rail = "buck"
				}
				id := syscfg.Read(s.hw)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "hclk: %s\n", hclk)
				fmt.Fprintf(out, "mode: %s\n", m)
				fmt.Fprintf(out, "rail: %s\n", rail)
				fmt.Fprintf(out, "chip: pid=0x%02x rev=0x%02x letter=%t\n", id.PID, id.RevID, id.LetterSeries())
				return nil
			})
		},
	}
}
