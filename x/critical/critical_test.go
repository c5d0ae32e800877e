package critical

import (
	"errors"
	"sync"
	"testing"
)

func TestTokenValidOnlyInsideSection(t *testing.T) {
	var kept Token
	err := With(func(cs Token) error {
		if !cs.Valid() {
			t.Fatalf("token must be valid inside the section")
		}
		kept = cs
		return nil
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if kept.Valid() {
		t.Fatalf("token must not outlive its section")
	}
	if !errors.Is(kept.Check(), ErrNoSection) {
		t.Fatalf("Check on stale token = %v", kept.Check())
	}
	var zero Token
	if zero.Valid() {
		t.Fatalf("zero token must be invalid")
	}
}

func TestStaleTokenRejectedInLaterSection(t *testing.T) {
	var first Token
	_ = With(func(cs Token) error { first = cs; return nil })
	_ = With(func(cs Token) error {
		if first.Valid() {
			t.Fatalf("token from an earlier section accepted")
		}
		return nil
	})
}

func TestWithPropagatesError(t *testing.T) {
	want := errors.New("boom")
	if got := With(func(Token) error { return want }); got != want {
		t.Fatalf("With returned %v, want %v", got, want)
	}
}

func TestSectionsAreExclusive(t *testing.T) {
	var (
		wg     sync.WaitGroup
		inside int
		peak   int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = With(func(Token) error {
					inside++
					if inside > peak {
						peak = inside
					}
					inside--
					return nil
				})
			}
		}()
	}
	wg.Wait()
	if peak != 1 {
		t.Fatalf("peak concurrency inside section = %d, want 1", peak)
	}
}

func TestStaleTokenCheckedFromOtherGoroutine(t *testing.T) {
	var stale Token
	_ = With(func(cs Token) error { stale = cs; return nil })

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			_ = With(func(Token) error { return nil })
		}
	}()
	for i := 0; i < 500; i++ {
		if stale.Valid() {
			t.Fatalf("stale token accepted while another section ran")
		}
	}
	<-done
}
