package clock

import (
	"encoding/json"

	"clocktree-go/drivers/sf32lb52/dvfs"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/errcode"
	"clocktree-go/types"
)

func badParam(field, val string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: field, Msg: "unknown value " + val}
}

func parseSys(s string) (regs.SysSel, error) {
	switch s {
	case "hrc48":
		return regs.SysHRC48, nil
	case "hxt48":
		return regs.SysHXT48, nil
	case "dbl96":
		return regs.SysDBL96, nil
	case "dll1":
		return regs.SysDLL1, nil
	}
	return 0, badParam("sys", s)
}

func parsePeri(s string) (regs.PeriSel, error) {
	switch s {
	case "hrc48":
		return regs.PeriHRC48, nil
	case "hxt48":
		return regs.PeriHXT48, nil
	}
	return 0, badParam("peri", s)
}

func parseUSB(s string) (regs.USBSel, error) {
	switch s {
	case "clk_sys", "":
		return regs.USBClkSys, nil
	case "dll2":
		return regs.USBDLL2, nil
	}
	return 0, badParam("usb.sel", s)
}

func parseTick(s string) (regs.TickSel, error) {
	switch s {
	case "rtc", "":
		return regs.TickRTC, nil
	case "hrc48":
		return regs.TickHRC48, nil
	case "hxt48":
		return regs.TickHXT48, nil
	}
	return 0, badParam("tick.sel", s)
}

func dll(d types.DLLSetting) rcc.DLLConfig {
	return rcc.DLLConfig{Enable: d.Enable, Stage: d.Stage, Div2: d.Div2}
}

// ToConfig turns a bus overlay into an engine request. Absent fields keep.
func ToConfig(o types.ClockOverlay) (rcc.Config, error) {
	var c rcc.Config
	if o.HXT48 != nil {
		c.HXT48 = rcc.Update(*o.HXT48)
	}
	if o.HRC48 != nil {
		c.HRC48 = rcc.Update(*o.HRC48)
	}
	if o.DLL1 != nil {
		c.DLL1 = rcc.Update(dll(*o.DLL1))
	}
	if o.DLL2 != nil {
		c.DLL2 = rcc.Update(dll(*o.DLL2))
	}
	if o.Sys != nil {
		v, err := parseSys(*o.Sys)
		if err != nil {
			return c, err
		}
		c.SysSel = rcc.Update(v)
	}
	if o.HDiv != nil {
		c.HDiv = rcc.Update(*o.HDiv)
	}
	if o.PDiv1 != nil {
		c.PDiv1 = rcc.Update(*o.PDiv1)
	}
	if o.PDiv2 != nil {
		c.PDiv2 = rcc.Update(*o.PDiv2)
	}
	if o.USB != nil {
		sel, err := parseUSB(o.USB.Sel)
		if err != nil {
			return c, err
		}
		c.USB = rcc.Update(rcc.USBConfig{Sel: sel, Div: o.USB.Div})
	}
	if o.Tick != nil {
		sel, err := parseTick(o.Tick.Sel)
		if err != nil {
			return c, err
		}
		c.Tick = rcc.Update(rcc.TickConfig{Sel: sel, Div: o.Tick.Div})
	}
	if o.Peri != nil {
		v, err := parsePeri(*o.Peri)
		if err != nil {
			return c, err
		}
		c.PeriSel = rcc.Update(v)
	}
	return c, nil
}

// FromState renders a snapshot for the bus. Nodes that cannot be derived
// are left out of Freqs.
func FromState(s rcc.State, highRail bool, ts int64) types.ClockState {
	out := types.ClockState{Rail: "ldo", Freqs: make(map[string]uint32, len(rcc.Nodes)), TS: ts}
	if highRail {
		out.Rail = "buck"
	}
	for _, n := range rcc.Nodes {
		if f, err := s.Freq(n); err == nil {
			out.Freqs[n.String()] = uint32(f)
		}
	}
	if f, err := s.Freq(rcc.HCLK); err == nil {
		if m, err := dvfs.FromHertz(f); err == nil {
			out.Mode = m.String()
		}
	}
	return out
}

func decodeJSON[T any](src any, dst *T) error {
	var err error
	switch v := src.(type) {
	case nil:
		return errcode.InvalidPayload
	case *T:
		*dst = *v
		return nil
	case T:
		*dst = v
		return nil
	case []byte:
		err = json.Unmarshal(v, dst)
	case string:
		err = json.Unmarshal([]byte(v), dst)
	default:
		var b []byte
		if b, err = json.Marshal(v); err == nil {
			err = json.Unmarshal(b, dst)
		}
	}
	if err != nil {
		return &errcode.E{C: errcode.InvalidPayload, Msg: err.Error(), Err: err}
	}
	return nil
}

// DecodeOverlay decodes a bus payload (struct, JSON bytes or string, or a
// generic map) into an engine request.
func DecodeOverlay(p any) (rcc.Config, error) {
	var o types.ClockOverlay
	if err := decodeJSON(p, &o); err != nil {
		return rcc.Config{}, err
	}
	return ToConfig(o)
}
