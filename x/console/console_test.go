package console

import "testing"

func TestLinesSplitsAcrossWrites(t *testing.T) {
	var got []string
	l := &Lines{Fn: func(s string) { got = append(got, s) }}

	l.Write([]byte("hclk: 240"))
	l.Write([]byte(".000 MHz\npclk1: "))
	n, err := l.Write([]byte("120.000 MHz\n\n"))
	if err != nil || n != 13 {
		t.Fatalf("Write = %d, %v", n, err)
	}

	want := []string{"hclk: 240.000 MHz", "pclk1: 120.000 MHz", ""}
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriterReportsFullLength(t *testing.T) {
	n, err := Writer{}.Write([]byte("ok\n"))
	if n != 3 || err != nil {
		t.Fatalf("Write = %d, %v", n, err)
	}
}
