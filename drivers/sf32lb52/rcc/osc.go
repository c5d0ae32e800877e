package rcc

import "clocktree-go/drivers/sf32lb52/regs"

type oscillator struct {
	name     string
	req, rdy regs.Field
}

var (
	oscHXT48 = oscillator{"hxt48", regs.ACR_HXT48_REQ, regs.ACR_HXT48_RDY}
	oscHRC48 = oscillator{"hrc48", regs.ACR_HRC48_REQ, regs.ACR_HRC48_RDY}
)

// setOscillator writes the request bit and waits for the ready bit to
// follow it in either direction.
func (c *Controller) setOscillator(o oscillator, on bool) error {
	acr := regs.At(c.regs, regs.AON_ACR)
	acr.SetFlag(o.req, on)
	if err := c.wait.Until(func() bool { return acr.Flag(o.rdy) == on }); err != nil {
		return &FatalError{Op: o.name + " ready", Err: err}
	}
	return nil
}
