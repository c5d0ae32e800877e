package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clocktree-go/drivers/sf32lb52/rcc"
)

func newPeriphCmd(o *options) *cobra.Command {
	var disable bool
	cmd := &cobra.Command{
		Use:   "periph [name]",
		Short: "Enable-and-reset or disable a peripheral; list gates without a name.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withSession(cmd, func(s *session) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					for _, p := range rcc.Peripherals {
						on, err := s.ctl.Enabled(p)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%-10s bank%d bit%-2d %s\n", p.Name, p.Bank, p.Bit, onOff(on))
					}
					return nil
				}

				p, ok := rcc.LookupPeripheral(args[0])
				if !ok {
					return fmt.Errorf("unknown peripheral %q", args[0])
				}
				var err error
				if disable {
					err = s.ctl.Disable(p)
				} else {
					err = s.ctl.EnableAndReset(p)
				}
				if err != nil {
					return err
				}
				on, err := s.ctl.Enabled(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", p.Name, onOff(on))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&disable, "disable", false, "gate the peripheral clock off instead")
	return cmd
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
