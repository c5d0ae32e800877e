package rcc

import (
	"errors"
	"testing"

	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
	"clocktree-go/x/timex"
)

func TestEnableAndReset(t *testing.T) {
	r := newRig(t)
	if err := r.c.EnableAndReset(GPIO1); err != nil {
		t.Fatal(err)
	}
	m := uint32(1) << GPIO1.Bit
	if r.hw.Peek(regs.RCC_ENR2)&m == 0 {
		t.Fatalf("gpio1 not enabled")
	}
	rst := r.rec.Writes(regs.RCC_RSTR2)
	if len(rst) != 2 || rst[0].Value&m == 0 || rst[1].Value&m != 0 {
		t.Fatalf("reset pulse = %+v", rst)
	}
	if on, _ := r.c.Enabled(GPIO1); !on {
		t.Fatalf("Enabled(gpio1) = false")
	}

	if err := r.c.Disable(GPIO1); err != nil {
		t.Fatal(err)
	}
	if on, _ := r.c.Enabled(GPIO1); on {
		t.Fatalf("gpio1 still enabled")
	}
}

func TestEnableAndResetTimeout(t *testing.T) {
	r := newRig(t)
	r.hw.Hold(regs.RCC_RSTR1, regs.Field{Pos: I2C1.Bit, Width: 1})

	err := r.c.EnableAndReset(I2C1)
	if !IsFatal(err) || !errors.Is(err, timex.ErrTimeout) {
		t.Fatalf("err = %v", err)
	}
}

func TestPeripheralGuards(t *testing.T) {
	r := newRig(t)
	if err := r.c.EnableAndResetCS(critical.Token{}, USART2); !errors.Is(err, critical.ErrNoSection) {
		t.Fatalf("err = %v", err)
	}
	if err := r.c.DisableCS(critical.Token{}, USART2); !errors.Is(err, critical.ErrNoSection) {
		t.Fatalf("err = %v", err)
	}
	if err := r.c.EnableAndReset(Peripheral{Name: "bogus", Bank: 3}); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("err = %v", err)
	}
	if err := r.c.Disable(Peripheral{Name: "bogus", Bank: 3}); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("Disable: %v", err)
	}
	if _, err := r.c.Enabled(Peripheral{Name: "bogus", Bank: 3}); !errors.Is(err, ErrFieldRange) {
		t.Fatalf("Enabled: %v", err)
	}
}

func TestPeripheralTableUnique(t *testing.T) {
	seen := map[[2]uint8]string{}
	for _, p := range Peripherals {
		k := [2]uint8{p.Bank, p.Bit}
		if other, ok := seen[k]; ok {
			t.Fatalf("%s and %s share bank %d bit %d", p.Name, other, p.Bank, p.Bit)
		}
		seen[k] = p.Name
		if got, ok := LookupPeripheral(p.Name); !ok || got != p {
			t.Fatalf("lookup %s", p.Name)
		}
	}
}
