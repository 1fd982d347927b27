package unibi

import "testing"

func TestRunLiteral(t *testing.T) {
	got := Run("hello", [9]Variant{})
	if got != "hello" {
		t.Errorf("Run = %q, want %q", got, "hello")
	}
}

func TestRunParam(t *testing.T) {
	params := [9]Variant{}
	params[0] = NumVar(5)
	got := Run("\x1b[%p1%dm", params)
	if got != "\x1b[5m" {
		t.Errorf("Run = %q, want %q", got, "\x1b[5m")
	}
}

func TestRunConditional(t *testing.T) {
	const fmt = "%p1%?%tyes%eno%;"

	params := [9]Variant{}
	params[0] = NumVar(1)
	if got := Run(fmt, params); got != "yes" {
		t.Errorf("Run(true branch) = %q, want %q", got, "yes")
	}

	params[0] = NumVar(0)
	if got := Run(fmt, params); got != "no" {
		t.Errorf("Run(false branch) = %q, want %q", got, "no")
	}
}

func TestRunArith(t *testing.T) {
	got := Run("%{2}%{3}%+%d", [9]Variant{})
	if got != "5" {
		t.Errorf("Run = %q, want %q", got, "5")
	}
}

func TestRunStringAndLength(t *testing.T) {
	params := [9]Variant{}
	params[0] = StrVar("abc")
	got := Run("%p1%l%d", params)
	if got != "3" {
		t.Errorf("Run = %q, want %q", got, "3")
	}
}

func TestRunVars(t *testing.T) {
	got := Run("%{7}%PA%gA%d", [9]Variant{})
	if got != "7" {
		t.Errorf("Run = %q, want %q", got, "7")
	}
}

func TestRunIncrement(t *testing.T) {
	params := [9]Variant{}
	params[0] = NumVar(1)
	params[1] = NumVar(2)
	got := Run("%i%p1%d,%p2%d", params)
	if got != "2,3" {
		t.Errorf("Run = %q, want %q", got, "2,3")
	}
}

func TestRunPrintfWidth(t *testing.T) {
	params := [9]Variant{}
	params[0] = NumVar(5)
	got := Run("%p1%3d", params)
	if got != "  5" {
		t.Errorf("Run = %q, want %q", got, "  5")
	}
}

func TestRunLiteralPercent(t *testing.T) {
	got := Run("100%%", [9]Variant{})
	if got != "100%" {
		t.Errorf("Run = %q, want %q", got, "100%")
	}
}

func TestRunIntoBufferTooSmall(t *testing.T) {
	params := [9]Variant{}
	params[0] = NumVar(12345)
	full := Run("%p1%d", params)

	small := make([]byte, 2)
	n := RunInto("%p1%d", params, small)
	if n != len(full) {
		t.Errorf("RunInto returned %d, want full length %d", n, len(full))
	}
	if string(small) != full[:2] {
		t.Errorf("RunInto partial write = %q, want %q", small, full[:2])
	}
}

func TestStackUnderflowPopsZero(t *testing.T) {
	// %d with nothing pushed: pop returns the zero Variant, i.e. 0.
	got := Run("%d", [9]Variant{})
	if got != "0" {
		t.Errorf("Run = %q, want %q", got, "0")
	}
}
