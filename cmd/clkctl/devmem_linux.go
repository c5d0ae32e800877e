//go:build linux && !tinygo

package main

import "clocktree-go/drivers/sf32lb52/regs"

func openDevMem(path string) (regs.File, func() error, error) {
	d, err := regs.OpenDevMem(path)
	if err != nil {
		return nil, nil, err
	}
	return d, d.Close, nil
}
