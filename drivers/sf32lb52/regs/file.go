package regs

// File is a 32-bit register file addressed by absolute bus address. A
// single Read32 or Write32 is atomic; sequences of them are not.
type File interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, v uint32)
}

// Reg is one register of a File, with the accessor set of TinyGo's
// volatile.Register32.
type Reg struct {
	F    File
	Addr uint32
}

// At binds addr in f.
func At(f File, addr uint32) Reg { return Reg{F: f, Addr: addr} }

func (r Reg) Get() uint32  { return r.F.Read32(r.Addr) }
func (r Reg) Set(v uint32) { r.F.Write32(r.Addr, v) }

func (r Reg) SetBits(m uint32)   { r.Set(r.Get() | m) }
func (r Reg) ClearBits(m uint32) { r.Set(r.Get() &^ m) }

// HasBits reports whether all bits of m are set.
func (r Reg) HasBits(m uint32) bool { return r.Get()&m == m }

// Field reads one bitfield.
func (r Reg) Field(f Field) uint32 { return f.Get(r.Get()) }

// Flag reads a single-bit field.
func (r Reg) Flag(f Field) bool { return f.Get(r.Get()) != 0 }

// SetField does a read-modify-write of one bitfield.
func (r Reg) SetField(f Field, x uint32) { r.Set(f.Put(r.Get(), x)) }

// SetFlag does a read-modify-write of a single-bit field.
func (r Reg) SetFlag(f Field, on bool) {
	var x uint32
	if on {
		x = 1
	}
	r.SetField(f, x)
}
