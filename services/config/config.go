// Package config publishes a board's embedded configuration on the bus, one
// retained message per top-level key under config/<key>.
package config

import (
	"context"
	"encoding/json"
	"errors"

	"clocktree-go/bus"
)

const configPrefix = "config"

type ctxKey string

// CtxBoardKey carries the board name in the context passed to Start.
const CtxBoardKey ctxKey = "board"

var (
	ErrNoBoard   = errors.New("config: no board in context")
	ErrNoConfig  = errors.New("config: no embedded config for board")
	ErrNotMap    = errors.New("config: embedded config is not a JSON object")
	ErrNoSection = errors.New("config: board config has no such section")
)

// EmbeddedConfigLookup resolves a board's raw JSON. Tests replace it.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// Boards lists the boards with an embedded config.
func Boards() []string {
	out := make([]string, 0, len(embeddedConfigs))
	for k := range embeddedConfigs {
		out = append(out, k)
	}
	return out
}

// Section returns one top-level key of a board's embedded config as raw JSON.
func Section(board, key string) (json.RawMessage, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return nil, ErrNoConfig
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return nil, ErrNotMap
	}
	sec, ok := m[key]
	if !ok {
		return nil, ErrNoSection
	}
	return sec, nil
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Publish resolves the board named in ctx and publishes its keys.
func (s *Service) Publish(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxBoardKey).(string)
	if board == "" {
		return ErrNoBoard
	}
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return ErrNoConfig
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return ErrNotMap
	}
	for k, v := range m {
		conn.Publish(conn.NewMessage(bus.T(configPrefix, k), v, true))
	}
	return nil
}

// Start publishes in the background, logging a failure.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go func() {
		if err := s.Publish(ctx, conn); err != nil {
			println("[config] " + err.Error())
		}
	}()
	return nil
}
