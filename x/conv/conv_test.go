package conv

import "testing"

func TestAppendUint(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{240, "240"},
		{18446744073709551615, "18446744073709551615"},
	}
	for _, c := range cases {
		if got := string(AppendUint([]byte("x="), c.n)); got != "x="+c.want {
			t.Fatalf("AppendUint(%d) = %q", c.n, got)
		}
	}
}

func TestAppendPadded(t *testing.T) {
	cases := []struct {
		n     uint64
		width int
		want  string
	}{
		{0, 3, "000"},
		{5, 3, "005"},
		{152, 3, "152"},
		{1234, 3, "1234"},
	}
	for _, c := range cases {
		if got := string(AppendPadded(nil, c.n, c.width)); got != c.want {
			t.Fatalf("AppendPadded(%d,%d) = %q, want %q", c.n, c.width, got, c.want)
		}
	}
}

func TestHex32(t *testing.T) {
	if got := Hex32(0x00110331); got != "0x00110331" {
		t.Fatalf("Hex32 = %q", got)
	}
	if got := Hex32(0xDEADBEEF); got != "0xDEADBEEF" {
		t.Fatalf("Hex32 = %q", got)
	}
}
