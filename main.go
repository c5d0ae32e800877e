// Firmware entry: brings the HPSYS clock tree to the board's configured
// operating point over the bus and keeps a heartbeat running.
package main

import (
	"context"
	"time"

	"clocktree-go/bus"
	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/drivers/sf32lb52/syscfg"
	"clocktree-go/services/clock"
	"clocktree-go/services/config"
	"clocktree-go/services/heartbeat"
	"clocktree-go/types"
	"clocktree-go/x/console"
	"clocktree-go/x/conv"
)

const clockReadyTimeout = 5 * time.Second

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(bootDelay)

	hw := boardRegs()
	id := syscfg.Read(hw)
	println("[main] boot " + boardName + " pid=" + conv.Hex32(uint32(id.PID)) + " rev=" + conv.Hex32(uint32(id.RevID)))

	ctx := context.WithValue(context.Background(), config.CtxBoardKey, boardName)
	b := bus.NewBus(8)
	mon := b.NewConnection("main")
	svcSub := mon.Subscribe(clock.TopicService)

	ctl := rcc.New(hw, rcc.Options{Delay: boardDelay})
	_ = clock.New(ctl, hw).Start(ctx, b.NewConnection("clock"))
	_ = (&heartbeat.Service{}).Start(ctx, b.NewConnection("heartbeat"))
	_ = config.NewService().Start(ctx, b.NewConnection("config"))

	if st, ok := waitClock(svcSub, clockReadyTimeout); !ok {
		println("[main] clock service did not settle")
	} else if st.Level != "ready" {
		println("[main] clock " + st.Level + ": " + st.Status + " " + st.Error)
	}
	mon.Unsubscribe(svcSub)

	dump := &console.Lines{Fn: func(l string) { println("[clock] " + l) }}
	if err := ctl.Dump(dump); err != nil {
		println("[main] dump: " + err.Error())
	}

	select {}
}

// waitClock returns the first clock service state past "idle".
func waitClock(sub *bus.Subscription, timeout time.Duration) (types.ServiceState, bool) {
	deadline := time.After(timeout)
	for {
		select {
		case m := <-sub.Channel():
			st, ok := m.Payload.(types.ServiceState)
			if ok && st.Level != "idle" {
				return st, true
			}
		case <-deadline:
			return types.ServiceState{}, false
		}
	}
}
