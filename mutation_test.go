package unibi

import "testing"

func TestBoolNumStrOutOfRange(t *testing.T) {
	term := Dummy()
	if term.Bool(-1) != false || term.Bool(len(term.Bools)) != false {
		t.Error("out-of-range Bool should read false")
	}
	if term.Num(-1) != -2 || term.Num(len(term.Nums)) != -2 {
		t.Error("out-of-range Num should read -2")
	}
	if term.Str(-1) != nil || term.Str(len(term.Strs)) != nil {
		t.Error("out-of-range Str should read nil")
	}
}

func TestAddDelExtBool(t *testing.T) {
	term := Dummy()
	i := term.AddExtBool("Xa", true)
	j := term.AddExtBool("Xb", false)
	if !term.ExtBool(i) || term.ExtBool(j) {
		t.Fatalf("ExtBool(%d)=%v ExtBool(%d)=%v", i, term.ExtBool(i), j, term.ExtBool(j))
	}
	if !term.checkExtNames() {
		t.Fatal("ExtNames partitioning invariant broken after AddExtBool")
	}

	term.DelExtBool(i)
	if term.ExtBoolName(0) != "Xb" {
		t.Errorf("after delete, ExtBoolName(0) = %q, want Xb", term.ExtBoolName(0))
	}
	if !term.checkExtNames() {
		t.Fatal("ExtNames partitioning invariant broken after DelExtBool")
	}
}

func TestAddExtMixedKinds(t *testing.T) {
	term := Dummy()
	term.AddExtBool("Xbool", true)
	term.AddExtNum("Xnum", 7)
	s := "hi"
	term.AddExtStr("Xstr", &s)

	if !term.checkExtNames() {
		t.Fatal("ExtNames partitioning invariant broken")
	}
	if term.ExtNumName(0) != "Xnum" {
		t.Errorf("ExtNumName(0) = %q, want Xnum", term.ExtNumName(0))
	}
	if term.ExtStrName(0) != "Xstr" {
		t.Errorf("ExtStrName(0) = %q, want Xstr", term.ExtStrName(0))
	}

	term.DelExtNum(0)
	if !term.checkExtNames() {
		t.Fatal("ExtNames partitioning invariant broken after DelExtNum")
	}
	if len(term.ExtNums) != 0 {
		t.Errorf("len(ExtNums) = %d, want 0", len(term.ExtNums))
	}
	if term.ExtStrName(0) != "Xstr" {
		t.Errorf("ExtStrName(0) after DelExtNum = %q, want Xstr", term.ExtStrName(0))
	}
}
