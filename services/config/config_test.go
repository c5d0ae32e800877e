package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"clocktree-go/bus"
	"clocktree-go/services/clock"
)

func TestPublishRetainedPerKey(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(board string) ([]byte, bool) {
		if board != "bench" {
			return nil, false
		}
		return []byte(`{"clock": {"hdiv": 2}, "debug": true}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	b := bus.NewBus(8)
	conn := b.NewConnection("config")
	ctx := context.WithValue(context.Background(), CtxBoardKey, "bench")
	if err := NewService().Publish(ctx, conn); err != nil {
		t.Fatal(err)
	}

	sub := conn.Subscribe(bus.T(configPrefix, bus.MultiWild))
	got := map[string]any{}
	deadline := time.After(300 * time.Millisecond)
	for len(got) < 2 {
		select {
		case m := <-sub.Channel():
			key, _ := m.Topic[1].(string)
			got[key] = m.Payload
		case <-deadline:
			t.Fatalf("got %v", got)
		}
	}
	if v, ok := got["debug"].(bool); !ok || !v {
		t.Fatalf("debug = %#v", got["debug"])
	}
	if m, ok := got["clock"].(map[string]any); !ok || m["hdiv"] != float64(2) {
		t.Fatalf("clock = %#v", got["clock"])
	}
}

func TestPublishErrors(t *testing.T) {
	conn := bus.NewBus(4).NewConnection("config")
	svc := NewService()

	if err := svc.Publish(context.Background(), conn); !errors.Is(err, ErrNoBoard) {
		t.Fatalf("no board: %v", err)
	}
	ctx := context.WithValue(context.Background(), CtxBoardKey, "nope")
	if err := svc.Publish(ctx, conn); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("unknown board: %v", err)
	}

	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(string) ([]byte, bool) { return []byte(`[1,2]`), true }
	t.Cleanup(func() { EmbeddedConfigLookup = old })
	if err := svc.Publish(ctx, conn); !errors.Is(err, ErrNotMap) {
		t.Fatalf("array config: %v", err)
	}
}

func TestEmbeddedClockConfigsParse(t *testing.T) {
	for _, board := range Boards() {
		b := bus.NewBus(4)
		conn := b.NewConnection("config")
		ctx := context.WithValue(context.Background(), CtxBoardKey, board)
		if err := NewService().Publish(ctx, conn); err != nil {
			t.Fatalf("%s: %v", board, err)
		}
		sub := conn.Subscribe(clock.TopicConfig)
		select {
		case m := <-sub.Channel():
			if _, err := clock.DecodeOverlay(m.Payload); err != nil {
				t.Fatalf("%s: %v", board, err)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s: no clock config", board)
		}
	}
}


func TestSection(t *testing.T) {
	sec, err := Section("sf32lb52-devkit", "clock")
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if _, err := clock.DecodeOverlay([]byte(sec)); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := Section("sf32lb52-devkit", "wifi"); !errors.Is(err, ErrNoSection) {
		t.Fatalf("missing key: %v", err)
	}
	if _, err := Section("nope", "clock"); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("missing board: %v", err)
	}
}
