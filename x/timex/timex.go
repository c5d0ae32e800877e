package timex

import (
	"errors"
	"time"
)

// ErrTimeout is returned when a hardware handshake does not complete within
// its poll budget.
var ErrTimeout = errors.New("timeout")

// NowNs returns Unix nanoseconds as int64.
func NowNs() int64 { return time.Now().UnixNano() }

// Delayer blocks for a fixed settle time.
type Delayer interface {
	DelayMicros(us uint32)
}

// SleepDelayer yields to the scheduler while waiting. Host builds only; it
// must not be used where interrupts are masked.
type SleepDelayer struct{}

func (SleepDelayer) DelayMicros(us uint32) { time.Sleep(time.Duration(us) * time.Microsecond) }

// SpinDelayer busy-waits on the monotonic clock without yielding.
type SpinDelayer struct{}

func (SpinDelayer) DelayMicros(us uint32) {
	end := time.Now().Add(time.Duration(us) * time.Microsecond)
	for time.Now().Before(end) {
	}
}

// Waiter bounds a busy-poll by attempt count and wall-clock deadline,
// whichever runs out first.
type Waiter struct {
	MaxPolls int
	Timeout  time.Duration
}

const (
	DefaultMaxPolls = 1_000_000
	DefaultTimeout  = 50 * time.Millisecond
)

// DefaultWaiter covers the slowest handshake on the part (crystal start-up).
func DefaultWaiter() Waiter {
	return Waiter{MaxPolls: DefaultMaxPolls, Timeout: DefaultTimeout}
}

// Until polls cond until it reports true or the budget is spent.
func (w Waiter) Until(cond func() bool) error {
	if w.MaxPolls <= 0 && w.Timeout <= 0 {
		w = DefaultWaiter()
	}
	var deadline time.Time
	if w.Timeout > 0 {
		deadline = time.Now().Add(w.Timeout)
	}
	for n := 0; w.MaxPolls <= 0 || n < w.MaxPolls; n++ {
		if cond() {
			return nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return ErrTimeout
		}
	}
	return ErrTimeout
}
