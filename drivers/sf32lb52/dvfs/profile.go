package dvfs

// Profile is the regulator and memory-timing setting owned by a mode.
type Profile struct {
	LDOOffset int8   // applied to LDO when programming the D-mode reference
	LDO       uint8  // LDO trim code
	Buck      uint8  // buck trim code
	ULPMCR    uint32 // memory timing register value
}

var profiles = [...]Profile{
	D0: {LDOOffset: -5, LDO: 0x6, Buck: 0x9, ULPMCR: 0x0010_0330}, // LDO 0.9V, buck 1.0V
	D1: {LDOOffset: -3, LDO: 0x8, Buck: 0xA, ULPMCR: 0x0011_0331}, // LDO 1.0V, buck 1.1V
	S0: {LDOOffset: 0, LDO: 0xB, Buck: 0xD, ULPMCR: 0x0013_0213},  // LDO 1.1V, buck 1.25V
	S1: {LDOOffset: 2, LDO: 0xD, Buck: 0xF, ULPMCR: 0x0013_0213},  // LDO 1.2V, buck 1.35V
}

// Profile returns the voltage profile of m.
func (m Mode) Profile() Profile { return profiles[m&3] }

// LDORef is the LDO reference code with the mode offset applied, clamped to
// the 4-bit field.
func (p Profile) LDORef() uint32 {
	v := int(p.LDO) + int(p.LDOOffset)
	if v < 0 {
		return 0
	}
	if v > 0xF {
		return 0xF
	}
	return uint32(v)
}
