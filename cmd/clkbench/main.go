//go:build tinygo && (rp2040 || rp2350)

// Command clkbench drives a target's clock tree from a Pico through the I2C
// debug bridge: it prints the chip identity and boot tree, applies the
// devkit clock config, then reports the DVFS mode periodically.
package main

import (
	"machine"
	"time"

	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/syscfg"
	"clocktree-go/errcode"
	"clocktree-go/services/clock"
	"clocktree-go/services/config"
	"clocktree-go/x/conv"
	"clocktree-go/x/console"
	"clocktree-go/x/timex"
)

const (
	board       = "sf32lb52-devkit"
	i2cFreq     = 400 * machine.KHz
	reportEvery = 5 * time.Second
)

func fail(stage string, err error) {
	for {
		println("[clkbench] " + stage + ": " + string(errcode.Of(err)) + " (" + err.Error() + ")")
		time.Sleep(reportEvery)
	}
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[clkbench] start")

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: i2cFreq, SDA: machine.GP4, SCL: machine.GP5}); err != nil {
		fail("i2c", err)
	}
	br := regs.NewI2CBridge(i2c, 0)

	id := syscfg.Read(br)
	if err := br.Err(); err != nil {
		fail("bridge", err)
	}
	line := "[clkbench] chip pid=" + conv.Hex32(uint32(id.PID)) + " rev=" + conv.Hex32(uint32(id.RevID))
	if id.LetterSeries() {
		line += " letter"
	}
	println(line)

	ctl := rcc.New(br, rcc.Options{Delay: timex.SleepDelayer{}})
	out := console.Writer{}

	println("[clkbench] boot tree:")
	if err := ctl.Dump(out); err != nil {
		fail("dump", err)
	}

	sec, err := config.Section(board, "clock")
	if err != nil {
		fail("config", err)
	}
	cfg, err := clock.DecodeOverlay([]byte(sec))
	if err != nil {
		fail("config", err)
	}
	start := time.Now()
	if err := ctl.Apply(cfg); err != nil {
		if rcc.IsFatal(err) {
			println("[clkbench] target needs a reset")
		}
		fail("apply", err)
	}
	if err := br.Err(); err != nil {
		fail("bridge", err)
	}
	println("[clkbench] applied in " + time.Since(start).String())
	if err := ctl.Dump(out); err != nil {
		fail("dump", err)
	}

	for {
		time.Sleep(reportEvery)
		m, err := ctl.Mode()
		if err != nil {
			println("[clkbench] mode: " + err.Error())
			continue
		}
		f, _ := ctl.Freq(rcc.HCLK)
		println("[clkbench] mode=" + m.String() + " hclk=" + rcc.FormatMHz(f))
	}
}
