// Package heartbeat prints a periodic liveness line carrying the latest
// core clock reported on clock/state.
package heartbeat

import (
	"context"
	"time"

	"clocktree-go/bus"
	"clocktree-go/types"
	"clocktree-go/x/conv"
)

var (
	topicConfig     = bus.T("config", "heartbeat")
	topicClockState = bus.T("clock", "state")
)

const DefaultInterval = time.Second

type Service struct {
	// Print receives each line. Defaults to println.
	Print func(string)
}

// Line renders one heartbeat for st.
func Line(now time.Time, st types.ClockState) string {
	b := make([]byte, 0, 64)
	b = append(b, "[heartbeat] "...)
	b = append(b, now.Format("15:04:05")...)
	if st.Mode == "" {
		return string(append(b, " clock=unknown"...))
	}
	hclk := uint64(st.Freqs["hclk"])
	b = append(b, " hclk="...)
	b = conv.AppendUint(b, hclk/1_000_000)
	b = append(b, '.')
	b = conv.AppendPadded(b, hclk/1_000%1_000, 3)
	b = append(b, "MHz mode="...)
	b = append(b, st.Mode...)
	b = append(b, " rail="...)
	return string(append(b, st.Rail...))
}

func (s *Service) loop(ctx context.Context, conn *bus.Connection) {
	out := s.Print
	if out == nil {
		out = func(l string) { println(l) }
	}
	cfgSub := conn.Subscribe(topicConfig)
	clkSub := conn.Subscribe(topicClockState)
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(clkSub)

	tick := time.NewTicker(DefaultInterval)
	defer tick.Stop()

	var last types.ClockState
	for {
		select {
		case <-ctx.Done():
			out("[heartbeat] stopping")
			return
		case t := <-tick.C:
			out(Line(t, last))
		case msg := <-clkSub.Channel():
			if st, ok := msg.Payload.(types.ClockState); ok {
				last = st
			}
		case msg := <-cfgSub.Channel():
			// {"interval": seconds}
			if m, ok := msg.Payload.(map[string]any); ok {
				if iv, ok := m["interval"].(float64); ok && iv > 0 {
					tick.Reset(time.Duration(iv * float64(time.Second)))
				}
			}
		}
	}
}

func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.loop(ctx, conn)
	return nil
}
