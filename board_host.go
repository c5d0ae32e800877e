//go:build !tinygo

package main

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/sim"
	"clocktree-go/x/timex"
)

const (
	boardName = "host"
	bootDelay = 0
)

var boardDelay timex.Delayer = timex.SleepDelayer{}

func boardRegs() regs.File { return sim.New() }
