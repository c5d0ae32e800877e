package rcc

import (
	"errors"
	"io"

	"clocktree-go/x/conv"
	"clocktree-go/x/hz"
)

// FormatMHz renders f as "<MHz>.<kHz> MHz" with three kHz digits, or
// "disabled" for zero.
func FormatMHz(f hz.Hertz) string {
	if !f.Enabled() {
		return "disabled"
	}
	return string(appendMHz(make([]byte, 0, 16), f))
}

func appendMHz(b []byte, f hz.Hertz) []byte {
	b = conv.AppendUint(b, uint64(f.WholeMHz()))
	b = append(b, '.')
	b = conv.AppendPadded(b, uint64(f.FracKHz()), 3)
	return append(b, " MHz"...)
}

// Dump writes "name: value" for every node. A node whose source is not
// supported prints "unsupported"; other derivation errors abort.
func (s State) Dump(w io.Writer) error {
	buf := make([]byte, 0, 48)
	for _, n := range Nodes {
		buf = append(buf[:0], n.String()...)
		buf = append(buf, ": "...)

		f, err := s.Freq(n)
		switch {
		case errors.Is(err, ErrUnsupportedSource):
			buf = append(buf, "unsupported"...)
		case err != nil:
			return err
		case !f.Enabled():
			buf = append(buf, "disabled"...)
		default:
			buf = appendMHz(buf, f)
		}
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
