// Package rcc is the SF32LB52x HPSYS clock-tree engine: it derives live
// clock frequencies from the RCC registers and applies partial
// reconfiguration requests with the voltage sequencing each frequency
// change needs.
//
// Every operation runs inside critical.With or takes the Token it mints.
// Nothing is cached; each call reads the hardware afresh.
package rcc

import (
	"io"

	"clocktree-go/drivers/sf32lb52/dvfs"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
	"clocktree-go/x/hz"
	"clocktree-go/x/timex"
)

// Options tune a Controller. Zero fields take defaults.
type Options struct {
	// Delay provides the fixed settle delays. Defaults to a spin delay,
	// which is safe with interrupts masked.
	Delay timex.Delayer
	// Wait bounds every ready/ack poll.
	Wait timex.Waiter
	// Log receives one line per notable step. Defaults to println.
	Log func(string)
}

type Controller struct {
	regs  regs.File
	delay timex.Delayer
	wait  timex.Waiter
	log   func(string)
	seq   dvfs.Sequencer
}

func New(f regs.File, o Options) *Controller {
	if o.Delay == nil {
		o.Delay = timex.SpinDelayer{}
	}
	if o.Wait == (timex.Waiter{}) {
		o.Wait = timex.DefaultWaiter()
	}
	if o.Log == nil {
		o.Log = func(s string) { println(s) }
	}
	return &Controller{
		regs:  f,
		delay: o.Delay,
		wait:  o.Wait,
		log:   o.Log,
		seq:   dvfs.Sequencer{Regs: f, Delay: o.Delay, Log: o.Log},
	}
}

// State reads a fresh snapshot of the clock registers.
func (c *Controller) State() (s State, err error) {
	err = critical.With(func(cs critical.Token) error {
		s, err = ReadState(cs, c.regs)
		return err
	})
	return s, err
}

// Freq derives the current frequency of n.
func (c *Controller) Freq(n Node) (f hz.Hertz, err error) {
	err = critical.With(func(cs critical.Token) error {
		f, err = c.FreqCS(cs, n)
		return err
	})
	return f, err
}

func (c *Controller) FreqCS(cs critical.Token, n Node) (hz.Hertz, error) {
	s, err := ReadState(cs, c.regs)
	if err != nil {
		return 0, err
	}
	return s.Freq(n)
}

// Mode classifies the current hclk.
func (c *Controller) Mode() (dvfs.Mode, error) {
	f, err := c.Freq(HCLK)
	if err != nil {
		return 0, err
	}
	return dvfs.FromHertz(f)
}

// Dump writes one line per clock node to w.
func (c *Controller) Dump(w io.Writer) error {
	s, err := c.State()
	if err != nil {
		return err
	}
	return s.Dump(w)
}
