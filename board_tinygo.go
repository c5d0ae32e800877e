//go:build tinygo

package main

import (
	"time"

	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/timex"
)

const (
	boardName = "sf32lb52-devkit"
	bootDelay = 2 * time.Second
)

var boardDelay timex.Delayer = timex.SpinDelayer{}

func boardRegs() regs.File { return regs.MMIO{} }
