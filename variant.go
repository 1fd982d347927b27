package unibi

import "math"

// Variant is the tagged int-or-string value the parameterized-string
// interpreter's stack, parameters and P/g variables hold. The zero
// Variant is the number 0, matching unibilium's convention that an
// all-zero unibi_var_t is a number.
type Variant struct {
	isStr bool
	num   int32
	str   string
}

// NumVar makes a numeric Variant.
func NumVar(i int32) Variant { return Variant{num: i} }

// StrVar makes a string Variant.
func StrVar(s string) Variant { return Variant{isStr: true, str: s} }

// Num extracts the numeric value of v. A string Variant reads back as
// math.MinInt32, unibilium's sentinel for "this was actually a string" —
// which is also truthy under %t/%e, matching the original's behavior.
func (v Variant) Num() int32 {
	if v.isStr {
		return math.MinInt32
	}
	return v.num
}

// Str extracts the string value of v. A numeric Variant reads back as "".
func (v Variant) Str() string {
	if v.isStr {
		return v.str
	}
	return ""
}
