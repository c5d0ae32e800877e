// Package clock exposes the clock engine on the bus.
//
//	config/clock               retained overlay, applied on arrival
//	clock/control/apply        overlay request, replies with the new state
//	clock/control/read_now     replies with the current state
//	clock/control/periph       peripheral gate request
//	clock/state                retained current state
//	clock/service              retained service state
package clock

import (
	"context"
	"time"

	"clocktree-go/bus"
	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/syscfg"
	"clocktree-go/errcode"
	"clocktree-go/types"
	"clocktree-go/x/critical"
	"clocktree-go/x/timex"
)

var (
	TopicConfig  = bus.T("config", "clock")
	TopicControl = bus.T("clock", "control", bus.Wild)
	TopicState   = bus.T("clock", "state")
	TopicService = bus.T("clock", "service")
)

type Service struct {
	ctl  *rcc.Controller
	regs regs.File

	// fatal is set once a sequence died half way; the tree is then left
	// alone until the device resets.
	fatal error
}

// New serves ctl. f must be the register file ctl drives; it is read for the
// rail status.
func New(ctl *rcc.Controller, f regs.File) *Service {
	return &Service{ctl: ctl, regs: f}
}

// Start runs the service loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.Run(ctx, conn)
	return nil
}

func (s *Service) Run(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(TopicConfig)
	ctrlSub := conn.Subscribe(TopicControl)
	defer conn.Unsubscribe(cfgSub)
	defer conn.Unsubscribe(ctrlSub)

	s.publishService(conn, "idle", "awaiting_config", nil)
	s.publishClock(conn)

	for {
		select {
		case <-ctx.Done():
			s.publishService(conn, "stopped", "context_cancelled", nil)
			return

		case msg := <-cfgSub.Channel():
			if msg == nil || msg.Payload == nil {
				continue
			}
			if err := s.applyPayload(msg.Payload); err != nil {
				println("[clock] config apply failed: " + err.Error())
				s.publishService(conn, "error", "apply_config_failed", err)
			} else {
				s.publishService(conn, "ready", "configured", nil)
			}
			s.publishClock(conn)

		case msg := <-ctrlSub.Channel():
			if msg == nil {
				continue
			}
			s.control(conn, msg)
		}
	}
}

func (s *Service) control(conn *bus.Connection, msg *bus.Message) {
	method, _ := msg.Topic[len(msg.Topic)-1].(string)
	switch method {
	case "apply":
		if err := s.applyPayload(msg.Payload); err != nil {
			replyErr(conn, msg, err)
			if s.fatal != nil {
				s.publishService(conn, "error", string(errcode.ResetRequired), err)
			}
			return
		}
		st, err := s.publishClock(conn)
		if err != nil {
			replyErr(conn, msg, err)
			return
		}
		conn.Reply(msg, st, false)

	case "read_now":
		st, err := s.publishClock(conn)
		if err != nil {
			replyErr(conn, msg, err)
			return
		}
		conn.Reply(msg, st, false)

	case "periph":
		var req types.PeriphRequest
		if err := decodeJSON(msg.Payload, &req); err != nil {
			replyErr(conn, msg, err)
			return
		}
		if err := s.periph(req); err != nil {
			replyErr(conn, msg, err)
			return
		}
		conn.Reply(msg, types.OKReply{OK: true}, false)

	default:
		replyErr(conn, msg, errcode.InvalidTopic)
	}
}

func (s *Service) applyPayload(p any) error {
	if s.fatal != nil {
		return &errcode.E{C: errcode.ResetRequired, Op: "apply", Err: s.fatal}
	}
	cfg, err := DecodeOverlay(p)
	if err != nil {
		return err
	}
	if err := s.ctl.Apply(cfg); err != nil {
		if rcc.IsFatal(err) {
			s.fatal = err
		}
		return errcode.Wrap("apply", err)
	}
	return nil
}

func (s *Service) periph(req types.PeriphRequest) error {
	if s.fatal != nil {
		return &errcode.E{C: errcode.ResetRequired, Op: "periph", Err: s.fatal}
	}
	p, ok := rcc.LookupPeripheral(req.Name)
	if !ok {
		return &errcode.E{C: errcode.UnknownPeriph, Msg: req.Name}
	}
	if !req.Enable {
		return errcode.Wrap("periph", s.ctl.Disable(p))
	}
	err := s.ctl.EnableAndReset(p)
	if rcc.IsFatal(err) {
		s.fatal = err
	}
	return errcode.Wrap("periph", err)
}

// Snapshot reads the clock tree and rail status.
func (s *Service) Snapshot() (types.ClockState, error) {
	var (
		st   rcc.State
		high bool
	)
	err := critical.With(func(cs critical.Token) error {
		var err error
		if st, err = rcc.ReadState(cs, s.regs); err != nil {
			return err
		}
		high, err = syscfg.IsHighRail(cs, s.regs)
		return err
	})
	if err != nil {
		return types.ClockState{}, err
	}
	return FromState(st, high, timex.NowNs()), nil
}

func (s *Service) publishClock(conn *bus.Connection) (types.ClockState, error) {
	st, err := s.Snapshot()
	if err != nil {
		return st, err
	}
	conn.Publish(conn.NewMessage(TopicState, st, true))
	return st, nil
}

func (s *Service) publishService(conn *bus.Connection, level, status string, err error) {
	pl := types.ServiceState{Level: level, Status: status, TS: time.Now().UnixNano()}
	if err != nil {
		pl.Error = string(errcode.Of(err))
	}
	conn.Publish(conn.NewMessage(TopicService, pl, true))
}

func replyErr(conn *bus.Connection, req *bus.Message, err error) {
	conn.Reply(req, types.ErrorReply{OK: false, Error: string(errcode.Of(err))}, false)
}
