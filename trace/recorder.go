// Package trace journals every register write and settle delay issued by
// the clock engine, so a bench run can be checked against the required
// voltage/clock ordering.
package trace

import (
	"sync"

	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/timex"
)

type Kind uint8

const (
	KindWrite Kind = iota + 1
	KindDelay
)

func (k Kind) String() string {
	switch k {
	case KindWrite:
		return "write"
	case KindDelay:
		return "delay"
	}
	return "unknown"
}

// Event is one journal entry.
type Event struct {
	Seq    int
	Kind   Kind
	Addr   uint32
	Reg    string
	Value  uint32
	Micros uint32
}

// Sink receives events as they are recorded.
type Sink interface {
	WriteEvent(Event)
}

// Recorder wraps a register file and a delayer. Reads pass straight through
// and are not journaled.
type Recorder struct {
	inner regs.File
	delay timex.Delayer

	mu     sync.Mutex
	seq    int
	events []Event
	sinks  []Sink
}

// NewRecorder wraps f and d. A nil d makes delays journal-only.
func NewRecorder(f regs.File, d timex.Delayer) *Recorder {
	return &Recorder{inner: f, delay: d}
}

// AddSink attaches s; it sees only events recorded afterwards.
func (r *Recorder) AddSink(s Sink) {
	r.mu.Lock()
	r.sinks = append(r.sinks, s)
	r.mu.Unlock()
}

func (r *Recorder) Read32(addr uint32) uint32 { return r.inner.Read32(addr) }

func (r *Recorder) Write32(addr uint32, v uint32) {
	r.inner.Write32(addr, v)
	r.record(Event{Kind: KindWrite, Addr: addr, Reg: regs.Name(addr), Value: v})
}

func (r *Recorder) DelayMicros(us uint32) {
	if r.delay != nil {
		r.delay.DelayMicros(us)
	}
	r.record(Event{Kind: KindDelay, Micros: us})
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	r.seq++
	e.Seq = r.seq
	r.events = append(r.events, e)
	sinks := r.sinks
	r.mu.Unlock()

	for _, s := range sinks {
		s.WriteEvent(e)
	}
}

// Events returns a copy of the journal.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset clears the journal; sequence numbers keep counting.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// Writes returns the journaled writes to addr, in order.
func (r *Recorder) Writes(addr uint32) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == KindWrite && e.Addr == addr {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first event matching pred, or ok=false.
func First(events []Event, pred func(Event) bool) (Event, bool) {
	for _, e := range events {
		if pred(e) {
			return e, true
		}
	}
	return Event{}, false
}
