// Package console adapts the runtime print builtin to io.Writer so code that
// renders into a writer can reach the firmware console without fmt.
package console

// Writer sends every write to the console as is.
type Writer struct{}

func (Writer) Write(p []byte) (int, error) {
	print(string(p))
	return len(p), nil
}

// Lines hands each complete line written to it, without the newline, to Fn.
// A trailing partial line waits for the next write.
type Lines struct {
	Fn  func(string)
	buf []byte
}

func (l *Lines) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		i := indexByte(p, '\n')
		if i < 0 {
			l.buf = append(l.buf, p...)
			break
		}
		l.buf = append(l.buf, p[:i]...)
		l.Fn(string(l.buf))
		l.buf = l.buf[:0]
		p = p[i+1:]
	}
	return n, nil
}

func indexByte(b []byte, c byte) int {
	for i := range b {
		if b[i] == c {
			return i
		}
	}
	return -1
}
