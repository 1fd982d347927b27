package unibi

import "testing"

func testRemap() *NetBSDRemap {
	return &NetBSDRemap{
		BoolToStd: []int{0, 1},   // netbsd bool 0 -> std 0, netbsd bool 1 -> std 1
		NumToStd:  []int{0},      // netbsd num 0 -> std 0
		StrToStd:  []int{0, -1},  // netbsd str 0 -> std 0; str 1 has no std slot
	}
}

func TestNetBSDRoundTrip(t *testing.T) {
	orig := Dummy()
	orig.Name = "nb"
	orig.Aliases = []string{"netbsd-test", "a netbsd test terminal"}
	orig.SetBool(0, true)
	orig.SetNum(0, 42)
	s := "\x1b[H"
	orig.SetStr(0, &s)

	remap := testRemap()
	buf, err := EncodeNetBSD(orig, remap)
	if err != nil {
		t.Fatalf("EncodeNetBSD: %v", err)
	}

	got, err := DecodeNetBSD(buf, remap)
	if err != nil {
		t.Fatalf("DecodeNetBSD: %v", err)
	}
	if got.Name != "nb" {
		t.Errorf("Name = %q, want nb", got.Name)
	}
	if len(got.Aliases) != 2 || got.Aliases[0] != "netbsd-test" {
		t.Errorf("Aliases = %v", got.Aliases)
	}
	if !got.Bool(0) {
		t.Error("Bool(0) = false, want true")
	}
	if got.Num(0) != 42 {
		t.Errorf("Num(0) = %d, want 42", got.Num(0))
	}
	if v := got.Str(0); v == nil || *v != "\x1b[H" {
		t.Errorf("Str(0) = %v, want \\x1b[H", v)
	}
}

func TestNetBSDOverflowGoesExtended(t *testing.T) {
	orig := Dummy()
	// Standard str ordinal 1 has no NetBSD slot per testRemap, so it must
	// round-trip through the extended "OT"-prefixed section instead.
	s := "overflow-value"
	orig.SetStr(1, &s)

	remap := testRemap()
	buf, err := EncodeNetBSD(orig, remap)
	if err != nil {
		t.Fatalf("EncodeNetBSD: %v", err)
	}
	got, err := DecodeNetBSD(buf, remap)
	if err != nil {
		t.Fatalf("DecodeNetBSD: %v", err)
	}
	found := false
	for i, name := range got.ExtNames[len(got.ExtBools)+len(got.ExtNums):] {
		if name == "OT1" && got.ExtStrs[i] != nil && *got.ExtStrs[i] == "overflow-value" {
			found = true
		}
	}
	if !found {
		t.Errorf("overflow string capability not found in extended section: %v / %v", got.ExtNames, got.ExtStrs)
	}
}

func TestDecodeNetBSDRejectsAliasTag(t *testing.T) {
	_, err := DecodeNetBSD([]byte{2}, testRemap())
	if err == nil {
		t.Fatal("expected an error for tag 2 (database alias)")
	}
}

func TestDecodeNetBSDTruncated(t *testing.T) {
	_, err := DecodeNetBSD([]byte{1}, testRemap())
	if err == nil {
		t.Fatal("expected an error decoding a truncated entry")
	}
}
