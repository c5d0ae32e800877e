// Command clkctl inspects and drives the SF32LB52x clock tree from a host,
// against the simulator or a /dev/mem mapping.
package main

import "github.com/tebeka/atexit"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
