package unibi

import "testing"

func TestDummy(t *testing.T) {
	term := Dummy()

	if want := "unibilium dummy terminal"; term.Name != want {
		t.Errorf("Name = %q, want %q", term.Name, want)
	}
	if want := []string{"null"}; len(term.Aliases) != 1 || term.Aliases[0] != want[0] {
		t.Errorf("Aliases = %v, want %v", term.Aliases, want)
	}

	if len(term.Bools) != BoolCount {
		t.Errorf("len(Bools) = %d, want %d", len(term.Bools), BoolCount)
	}
	if len(term.Nums) != NumCount {
		t.Errorf("len(Nums) = %d, want %d", len(term.Nums), NumCount)
	}
	if len(term.Strs) != StrCount {
		t.Errorf("len(Strs) = %d, want %d", len(term.Strs), StrCount)
	}
	for i, v := range term.Nums {
		if v != absentNum {
			t.Errorf("Nums[%d] = %d, want absent (%d)", i, v, absentNum)
		}
	}
	for i, s := range term.Strs {
		if s != nil {
			t.Errorf("Strs[%d] = %q, want nil", i, *s)
		}
	}
}

func TestTermDispose(t *testing.T) {
	term := Dummy()
	term.Dispose()

	if term.Name != "" || term.Aliases != nil || term.Bools != nil {
		t.Errorf("Dispose left non-zero state: %+v", term)
	}
}
