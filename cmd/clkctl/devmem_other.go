//go:build !linux || tinygo

package main

import (
	"errors"

	"clocktree-go/drivers/sf32lb52/regs"
)

func openDevMem(string) (regs.File, func() error, error) {
	return nil, nil, errors.New("devmem backend needs linux")
}
