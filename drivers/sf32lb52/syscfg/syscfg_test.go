package syscfg

import (
	"errors"
	"testing"

	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/drivers/sf32lb52/sim"
	"clocktree-go/x/critical"
)

func TestIdentification(t *testing.T) {
	hw := sim.New()
	if got := PID(hw); got != sim.BootPID {
		t.Fatalf("pid = %#x", got)
	}
	if got := RevID(hw); got != sim.BootRevID {
		t.Fatalf("revid = %#x", got)
	}
	if IsLetterSeries(hw) {
		t.Fatalf("boot part is not letter series")
	}

	hw.Poke(regs.CFG_IDR, regs.IDR_PID.Put(0, 0x52)|regs.IDR_REVID.Put(0, RevLetterSeries))
	if !IsLetterSeries(hw) {
		t.Fatalf("revid 0xFF must be letter series")
	}
}

func TestIsHighRail(t *testing.T) {
	hw := sim.New()
	err := critical.With(func(cs critical.Token) error {
		high, err := IsHighRail(cs, hw)
		if err != nil {
			return err
		}
		if high {
			t.Errorf("boot runs from the LDO rail")
		}
		hw.Poke(regs.CFG_SYSCR, 0)
		if high, _ = IsHighRail(cs, hw); !high {
			t.Errorf("cleared LDO_VSEL means buck rail")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := IsHighRail(critical.Token{}, hw); !errors.Is(err, critical.ErrNoSection) {
		t.Fatalf("err = %v", err)
	}
}
