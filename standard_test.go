package unibi

import "testing"

func dummyWithCaps() *Term {
	t := Dummy()
	t.Aliases = []string{"dummy-alias", "a dummy terminal for testing"}
	t.SetBool(0, true)
	t.SetNum(0, 80)
	s := "\x1b[%p1%dm"
	t.SetStr(0, &s)
	return t
}

func TestStandardRoundTrip16Bit(t *testing.T) {
	orig := dummyWithCaps()

	buf, err := EncodeStandard(orig)
	if err != nil {
		t.Fatalf("EncodeStandard: %v", err)
	}

	got, dialect, err := DecodeStandard(buf)
	if err != nil {
		t.Fatalf("DecodeStandard: %v", err)
	}
	if dialect != Dialect16 {
		t.Errorf("dialect = %v, want Dialect16", dialect)
	}
	if got.Name != orig.Name {
		t.Errorf("Name = %q, want %q", got.Name, orig.Name)
	}
	if len(got.Aliases) != len(orig.Aliases) {
		t.Fatalf("Aliases = %v, want %v", got.Aliases, orig.Aliases)
	}
	for i, a := range orig.Aliases {
		if got.Aliases[i] != a {
			t.Errorf("Aliases[%d] = %q, want %q", i, got.Aliases[i], a)
		}
	}
	if !got.Bool(0) {
		t.Errorf("Bool(0) = false, want true")
	}
	if got.Num(0) != 80 {
		t.Errorf("Num(0) = %d, want 80", got.Num(0))
	}
	if s := got.Str(0); s == nil || *s != "\x1b[%p1%dm" {
		t.Errorf("Str(0) = %v, want \\x1b[%%p1%%dm", s)
	}
}

func TestStandardRoundTrip32Bit(t *testing.T) {
	orig := Dummy()
	orig.SetNum(0, 100000) // forces the 32-bit dialect

	buf, err := EncodeStandard(orig)
	if err != nil {
		t.Fatalf("EncodeStandard: %v", err)
	}
	got, dialect, err := DecodeStandard(buf)
	if err != nil {
		t.Fatalf("DecodeStandard: %v", err)
	}
	if dialect != Dialect32 {
		t.Errorf("dialect = %v, want Dialect32", dialect)
	}
	if got.Num(0) != 100000 {
		t.Errorf("Num(0) = %d, want 100000", got.Num(0))
	}
}

func TestStandardRoundTripExtended(t *testing.T) {
	orig := Dummy()
	orig.AddExtBool("XM", true)
	orig.AddExtNum("Nx", 42)
	s := "ext-string"
	orig.AddExtStr("Sx", &s)

	buf, err := EncodeStandard(orig)
	if err != nil {
		t.Fatalf("EncodeStandard: %v", err)
	}
	got, _, err := DecodeStandard(buf)
	if err != nil {
		t.Fatalf("DecodeStandard: %v", err)
	}
	if !got.ExtBool(0) || got.ExtBoolName(0) != "XM" {
		t.Errorf("ExtBool(0) = %v/%q, want true/XM", got.ExtBool(0), got.ExtBoolName(0))
	}
	if got.ExtNum(0) != 42 || got.ExtNumName(0) != "Nx" {
		t.Errorf("ExtNum(0) = %d/%q, want 42/Nx", got.ExtNum(0), got.ExtNumName(0))
	}
	if v := got.ExtStr(0); v == nil || *v != "ext-string" || got.ExtStrName(0) != "Sx" {
		t.Errorf("ExtStr(0) = %v/%q, want ext-string/Sx", v, got.ExtStrName(0))
	}
}

func TestDecodeStandardTruncated(t *testing.T) {
	_, _, err := DecodeStandard([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected an error decoding a truncated header")
	}
}

func TestDecodeStandardBadMagic(t *testing.T) {
	buf := make([]byte, 12)
	putUshort16(buf[0:2], 0xbeef)
	_, _, err := DecodeStandard(buf)
	if err == nil {
		t.Fatal("expected an error decoding an unrecognized magic number")
	}
}

func TestEncodeStandardBufferTooSmall(t *testing.T) {
	orig := dummyWithCaps()
	size, err := EncodeStandardSize(orig)
	if err != nil {
		t.Fatalf("EncodeStandardSize: %v", err)
	}
	_, err = EncodeStandardInto(orig, make([]byte, size-1))
	if err == nil {
		t.Fatal("expected ErrBufferTooSmall")
	}
}

func TestTrailingLen(t *testing.T) {
	present := []bool{true, false, true, false, false}
	got := trailingLen(len(present), func(i int) bool { return present[i] })
	if got != 3 {
		t.Errorf("trailingLen = %d, want 3", got)
	}
	none := []bool{false, false}
	if got := trailingLen(len(none), func(i int) bool { return none[i] }); got != 0 {
		t.Errorf("trailingLen(all-absent) = %d, want 0", got)
	}
}
