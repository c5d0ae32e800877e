package dvfs

import (
	"errors"
	"testing"

	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
	"clocktree-go/x/hz"
)

func TestFromMHzBands(t *testing.T) {
	cases := []struct {
		mhz  uint32
		want Mode
	}{
		{0, D0}, {24, D0},
		{25, D1}, {48, D1},
		{49, S0}, {144, S0},
		{145, S1}, {240, S1},
	}
	for _, c := range cases {
		got, err := FromMHz(c.mhz)
		if err != nil {
			t.Fatalf("FromMHz(%d): %v", c.mhz, err)
		}
		if got != c.want {
			t.Fatalf("FromMHz(%d) = %v, want %v", c.mhz, got, c.want)
		}
	}
	if _, err := FromMHz(241); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("FromMHz(241) err = %v, want ErrOutOfRange", err)
	}
}

func TestFromHertzTruncates(t *testing.T) {
	m, err := FromHertz(24_999_999)
	if err != nil || m != D0 {
		t.Fatalf("24.999999 MHz = %v,%v; want D0", m, err)
	}
	m, err = FromHertz(240_999_999)
	if err != nil || m != S1 {
		t.Fatalf("240.999999 MHz = %v,%v; want S1", m, err)
	}
	if _, err := FromHertz(hz.MHzOf(241)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("241 MHz must be out of range")
	}
}

func TestDLL2Limit(t *testing.T) {
	for _, m := range Modes {
		want := hz.Hertz(0)
		if m == S0 || m == S1 {
			want = hz.MHzOf(288)
		}
		if got := m.DLL2Limit(); got != want {
			t.Fatalf("%v DLL2Limit = %d, want %d", m, got, want)
		}
	}
}

func TestSelectCoversAllPairs(t *testing.T) {
	want := map[[2]Mode]Strategy{
		{D0, D0}: Direct, {D1, D1}: Direct, {S0, S0}: Direct, {S1, S1}: Direct,
		{D0, S0}: RaiseRail, {D0, S1}: RaiseRail, {D1, S0}: RaiseRail, {D1, S1}: RaiseRail,
		{S0, D0}: LowerRail, {S0, D1}: LowerRail, {S1, D0}: LowerRail, {S1, D1}: LowerRail,
		{S0, S1}: WithinHigh, {S1, S0}: WithinHigh,
		{D0, D1}: WithinLow, {D1, D0}: WithinLow,
	}
	n := 0
	for _, cur := range Modes {
		for _, tgt := range Modes {
			n++
			w, ok := want[[2]Mode{cur, tgt}]
			if !ok {
				t.Fatalf("pair %v->%v missing from table", cur, tgt)
			}
			if got := Select(cur, tgt); got != w {
				t.Fatalf("Select(%v,%v) = %v, want %v", cur, tgt, got, w)
			}
		}
	}
	if n != 16 || len(want) != 16 {
		t.Fatalf("expected 16 pairs, saw %d", n)
	}
}

func TestLDORef(t *testing.T) {
	want := map[Mode]uint32{D0: 1, D1: 5, S0: 0xB, S1: 0xF}
	for m, w := range want {
		if got := m.Profile().LDORef(); got != w {
			t.Fatalf("%v LDORef = %#x, want %#x", m, got, w)
		}
	}
}

// --- sequencing ---

type step struct {
	addr uint32
	val  uint32
	us   uint32 // non-zero for a delay
	mark string
}

type tape struct {
	mem   map[uint32]uint32
	steps []step
}

func newTape() *tape { return &tape{mem: map[uint32]uint32{}} }

func (t *tape) Read32(a uint32) uint32 { return t.mem[a] }
func (t *tape) Write32(a uint32, v uint32) {
	t.mem[a] = v
	t.steps = append(t.steps, step{addr: a, val: v})
}
func (t *tape) DelayMicros(us uint32) { t.steps = append(t.steps, step{us: us}) }
func (t *tape) mark(s string) func() error {
	return func() error {
		t.steps = append(t.steps, step{mark: s})
		return nil
	}
}

func (t *tape) index(pred func(step) bool) int {
	for i, s := range t.steps {
		if pred(s) {
			return i
		}
	}
	return -1
}

func isWrite(addr uint32) func(step) bool {
	return func(s step) bool { return s.mark == "" && s.us == 0 && s.addr == addr }
}
func isDelay(s step) bool { return s.us != 0 }
func isClock(s step) bool { return s.mark == "clock" }

func run(t *testing.T, cur, tgt Mode) *tape {
	t.Helper()
	tp := newTape()
	seq := &Sequencer{Regs: tp, Delay: tp}
	err := critical.With(func(cs critical.Token) error {
		return seq.Transition(cs, cur, tgt, tp.mark("clock"))
	})
	if err != nil {
		t.Fatalf("Transition %v->%v: %v", cur, tgt, err)
	}
	return tp
}

func TestRaiseRailOrder(t *testing.T) {
	tp := run(t, D1, S1)
	buck := tp.index(isWrite(regs.PMUC_BUCK_VOUT))
	vsel := tp.index(isWrite(regs.CFG_SYSCR))
	delay := tp.index(isDelay)
	clock := tp.index(isClock)
	if !(buck >= 0 && buck < vsel && vsel < delay && delay < clock) {
		t.Fatalf("bad order buck=%d vsel=%d delay=%d clock=%d", buck, vsel, delay, clock)
	}
	if tp.steps[delay].us != SettleMicros {
		t.Fatalf("settle = %dus", tp.steps[delay].us)
	}
	if regs.SYSCR_LDO_VSEL.Get(tp.mem[regs.CFG_SYSCR]) != 0 {
		t.Fatalf("rail must be switched to buck")
	}
	if regs.BUCK_VOUT_VOUT.Get(tp.mem[regs.PMUC_BUCK_VOUT]) != uint32(S1.Profile().Buck) {
		t.Fatalf("buck trim not programmed for S1")
	}
}

func TestLowerRailOrder(t *testing.T) {
	tp := run(t, S1, D1)
	stage := tp.index(isWrite(regs.PMUC_BUCK_CR2))
	ldo := tp.index(isWrite(regs.PMUC_HPSYS_LDO))
	clock := tp.index(isClock)
	ulpm := tp.index(isWrite(regs.CFG_ULPMCR))
	vsel := tp.index(isWrite(regs.CFG_SYSCR))
	if !(stage >= 0 && ldo > stage && clock > ldo && ulpm > clock && vsel > ulpm) {
		t.Fatalf("bad order stage=%d ldo=%d clock=%d ulpm=%d vsel=%d", stage, ldo, clock, ulpm, vsel)
	}
	if vsel != len(tp.steps)-1 {
		t.Fatalf("rail switch must be the last step")
	}
	if tp.index(isDelay) >= 0 {
		t.Fatalf("lower-rail sequence has no settle delay")
	}
	if tp.mem[regs.CFG_ULPMCR] != D1.Profile().ULPMCR {
		t.Fatalf("ULPMCR = %#x", tp.mem[regs.CFG_ULPMCR])
	}
	if regs.HPSYS_LDO_VREF.Get(tp.mem[regs.PMUC_HPSYS_LDO]) != D1.Profile().LDORef() {
		t.Fatalf("LDO reference not offset")
	}
}

func TestWithinLowUsesLowerRailSequence(t *testing.T) {
	a := run(t, D0, D1)
	b := run(t, S0, D1)
	if len(a.steps) != len(b.steps) {
		t.Fatalf("D0->D1 and S0->D1 sequences differ: %d vs %d steps", len(a.steps), len(b.steps))
	}
	for i := range a.steps {
		if a.steps[i] != b.steps[i] {
			t.Fatalf("step %d differs: %+v vs %+v", i, a.steps[i], b.steps[i])
		}
	}
}

func TestWithinHighOrder(t *testing.T) {
	tp := run(t, S0, S1)
	buck := tp.index(isWrite(regs.PMUC_BUCK_VOUT))
	delay := tp.index(isDelay)
	clock := tp.index(isClock)
	if !(buck >= 0 && delay > buck && clock > delay) {
		t.Fatalf("bad order buck=%d delay=%d clock=%d", buck, delay, clock)
	}
	if tp.index(isWrite(regs.CFG_SYSCR)) >= 0 {
		t.Fatalf("S<->S must not touch the rail select")
	}
}

func TestDirectOnlyReconfigures(t *testing.T) {
	tp := run(t, S0, S0)
	if len(tp.steps) != 1 || !isClock(tp.steps[0]) {
		t.Fatalf("direct transition steps = %+v", tp.steps)
	}
}

func TestLowerRailAbortKeepsHighRail(t *testing.T) {
	tp := newTape()
	seq := &Sequencer{Regs: tp, Delay: tp}
	boom := errors.New("dll timeout")
	err := critical.With(func(cs critical.Token) error {
		return seq.Transition(cs, S1, D0, func() error { return boom })
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if tp.index(isWrite(regs.CFG_SYSCR)) >= 0 {
		t.Fatalf("rail switched after a failed clock change")
	}
}

func TestTransitionRequiresSection(t *testing.T) {
	tp := newTape()
	seq := &Sequencer{Regs: tp, Delay: tp}
	err := seq.Transition(critical.Token{}, D0, S1, tp.mark("clock"))
	if !errors.Is(err, critical.ErrNoSection) {
		t.Fatalf("err = %v, want ErrNoSection", err)
	}
	if len(tp.steps) != 0 {
		t.Fatalf("sequence ran without a section")
	}
}
