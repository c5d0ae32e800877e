// Package conv formats integers into byte slices without fmt or strconv,
// for paths that run with interrupts masked.
package conv

const hexDigits = "0123456789ABCDEF"

// AppendUint appends the base-10 form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	return AppendPadded(dst, n, 1)
}

// AppendPadded appends n in base 10, zero-padded to at least width digits.
func AppendPadded(dst []byte, n uint64, width int) []byte {
	var buf [20]byte
	i := len(buf)
	for n > 0 || len(buf)-i < width {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if i == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendHex32 appends "0x" and eight uppercase hex digits.
func AppendHex32(dst []byte, v uint32) []byte {
	dst = append(dst, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(v>>uint(shift))&0xF])
	}
	return dst
}

// Hex32 is AppendHex32 as a string.
func Hex32(v uint32) string { return string(AppendHex32(nil, v)) }
