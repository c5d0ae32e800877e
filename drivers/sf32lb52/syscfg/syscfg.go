// Package syscfg reads chip identification and rail status from HPSYS_CFG.
package syscfg

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
)

// RevLetterSeries is the revision ID carried by letter-series (A4) parts.
const RevLetterSeries = 0xFF

// Info is the identification block.
type Info struct {
	PID   uint8
	RevID uint8
}

// LetterSeries reports whether the part is a letter-series revision.
func (i Info) LetterSeries() bool { return i.RevID == RevLetterSeries }

func Read(f regs.File) Info {
	idr := regs.At(f, regs.CFG_IDR).Get()
	return Info{
		PID:   uint8(regs.IDR_PID.Get(idr)),
		RevID: uint8(regs.IDR_REVID.Get(idr)),
	}
}

func PID(f regs.File) uint8   { return Read(f).PID }
func RevID(f regs.File) uint8 { return Read(f).RevID }

func IsLetterSeries(f regs.File) bool { return Read(f).LetterSeries() }

// IsHighRail reports whether the core runs from the buck rail (S modes).
// The LDO_VSEL bit is part of a DVFS sequence, so the read needs the section.
func IsHighRail(cs critical.Token, f regs.File) (bool, error) {
	if err := cs.Check(); err != nil {
		return false, err
	}
	return !regs.At(f, regs.CFG_SYSCR).Flag(regs.SYSCR_LDO_VSEL), nil
}
