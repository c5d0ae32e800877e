package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/services/clock"
	"clocktree-go/services/config"
)

func newApplyCmd(o *options) *cobra.Command {
	var (
		file   string
		board  string
		quiet  bool
		defcfg bool
	)
	cmd := &cobra.Command{
		Use:   "apply [overlay-json]",
		Short: "Apply a partial clock request and print the resulting tree.",
		Long: `Apply reads a clock overlay as JSON, for example

  clkctl apply '{"dll1":{"enable":true,"stage":9},"sys":"dll1"}'

Fields left out keep what the hardware holds. The overlay may instead come
from --file, the embedded board config (--board) or the engine defaults
(--default).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOverlay(args, file, board, defcfg)
			if err != nil {
				return err
			}
			return o.withSession(cmd, func(s *session) error {
				if err := s.ctl.Apply(cfg); err != nil {
					return err
				}
				if s.sink != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "journal session %s\n", s.sink.Session())
				}
				if quiet {
					return nil
				}
				return s.ctl.Dump(cmd.OutOrStdout())
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the overlay from a JSON file")
	cmd.Flags().StringVar(&board, "board", "", "use the clock section of an embedded board config")
	cmd.Flags().BoolVar(&defcfg, "default", false, "apply the engine default configuration")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the tree afterwards")
	return cmd
}

func loadOverlay(args []string, file, board string, defcfg bool) (rcc.Config, error) {
	sources := 0
	for _, set := range []bool{len(args) == 1, file != "", board != "", defcfg} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return rcc.Config{}, fmt.Errorf("give exactly one of an overlay argument, --file, --board or --default")
	}

	switch {
	case defcfg:
		return rcc.DefaultConfig(), nil
	case board != "":
		sec, err := config.Section(board, "clock")
		if err != nil {
			return rcc.Config{}, fmt.Errorf("board %q: %w", board, err)
		}
		return clock.DecodeOverlay([]byte(sec))
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return rcc.Config{}, err
		}
		return clock.DecodeOverlay(b)
	default:
		return clock.DecodeOverlay(args[0])
	}
}
