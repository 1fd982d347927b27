package unibi

// This file implements the get/set/add/del API for a Term's standard and
// extended capabilities. The standard arrays are fixed-size (BoolCount,
// NumCount, StrCount) so getters/setters there are plain indexing with an
// out-of-range guard; the extended arrays grow, so add/del keep ExtNames
// partitioned into its three contiguous bool/num/str runs by shifting the
// name slice the same way the name itself shifts.

// Bool returns the value of the standard boolean capability at ordinal i.
// An out-of-range ordinal reads back false.
func (t *Term) Bool(i int) bool {
	if i < 0 || i >= len(t.Bools) {
		return false
	}
	return t.Bools[i]
}

// SetBool sets the standard boolean capability at ordinal i. Out-of-range
// ordinals are ignored.
func (t *Term) SetBool(i int, v bool) {
	if i < 0 || i >= len(t.Bools) {
		return
	}
	t.Bools[i] = v
}

// Num returns the value of the standard numeric capability at ordinal i,
// or absentNum if it isn't set. An out-of-range ordinal reads back -2, the
// "no such capability" sentinel (distinct from "not set").
func (t *Term) Num(i int) int32 {
	if i < 0 || i >= len(t.Nums) {
		return -2
	}
	return t.Nums[i]
}

// SetNum sets the standard numeric capability at ordinal i. Out-of-range
// ordinals are ignored.
func (t *Term) SetNum(i int, v int32) {
	if i < 0 || i >= len(t.Nums) {
		return
	}
	t.Nums[i] = v
}

// Str returns the value of the standard string capability at ordinal i, or
// nil if it isn't set or i is out of range.
func (t *Term) Str(i int) *string {
	if i < 0 || i >= len(t.Strs) {
		return nil
	}
	return t.Strs[i]
}

// SetStr sets the standard string capability at ordinal i. Out-of-range
// ordinals are ignored.
func (t *Term) SetStr(i int, v *string) {
	if i < 0 || i >= len(t.Strs) {
		return
	}
	t.Strs[i] = v
}

// ExtBool returns the value of extended boolean capability i, or false if
// i is out of range.
func (t *Term) ExtBool(i int) bool {
	if i < 0 || i >= len(t.ExtBools) {
		return false
	}
	return t.ExtBools[i]
}

// ExtBoolName returns the name of extended boolean capability i.
func (t *Term) ExtBoolName(i int) string {
	if i < 0 || i >= len(t.ExtBools) {
		return ""
	}
	return t.ExtNames[i]
}

func (t *Term) ExtNum(i int) int32 {
	if i < 0 || i >= len(t.ExtNums) {
		return -2
	}
	return t.ExtNums[i]
}

func (t *Term) ExtNumName(i int) string {
	if i < 0 || i >= len(t.ExtNums) {
		return ""
	}
	return t.ExtNames[len(t.ExtBools)+i]
}

func (t *Term) ExtStr(i int) *string {
	if i < 0 || i >= len(t.ExtStrs) {
		return nil
	}
	return t.ExtStrs[i]
}

func (t *Term) ExtStrName(i int) string {
	if i < 0 || i >= len(t.ExtStrs) {
		return ""
	}
	return t.ExtNames[len(t.ExtBools)+len(t.ExtNums)+i]
}

func (t *Term) SetExtBool(i int, v bool) {
	if i < 0 || i >= len(t.ExtBools) {
		return
	}
	t.ExtBools[i] = v
}

func (t *Term) SetExtBoolName(i int, name string) {
	if i < 0 || i >= len(t.ExtBools) {
		return
	}
	t.ExtNames[i] = name
}

func (t *Term) SetExtNum(i int, v int32) {
	if i < 0 || i >= len(t.ExtNums) {
		return
	}
	t.ExtNums[i] = v
}

func (t *Term) SetExtNumName(i int, name string) {
	if i < 0 || i >= len(t.ExtNums) {
		return
	}
	t.ExtNames[len(t.ExtBools)+i] = name
}

func (t *Term) SetExtStr(i int, v *string) {
	if i < 0 || i >= len(t.ExtStrs) {
		return
	}
	t.ExtStrs[i] = v
}

func (t *Term) SetExtStrName(i int, name string) {
	if i < 0 || i >= len(t.ExtStrs) {
		return
	}
	t.ExtNames[len(t.ExtBools)+len(t.ExtNums)+i] = name
}

// AddExtBool appends a new extended boolean capability named name with
// value v, and returns its index.
func (t *Term) AddExtBool(name string, v bool) int {
	base := len(t.ExtBools)
	names := dynSeq[string]{data: t.ExtNames}
	names.insertAt(base, name)
	t.ExtNames = names.data

	bools := dynSeq[bool]{data: t.ExtBools}
	r := bools.append(v)
	t.ExtBools = bools.data
	return r
}

// AddExtNum appends a new extended numeric capability named name with
// value v, and returns its index.
func (t *Term) AddExtNum(name string, v int32) int {
	base := len(t.ExtBools) + len(t.ExtNums)
	names := dynSeq[string]{data: t.ExtNames}
	names.insertAt(base, name)
	t.ExtNames = names.data

	nums := dynSeq[int32]{data: t.ExtNums}
	r := nums.append(v)
	t.ExtNums = nums.data
	return r
}

// AddExtStr appends a new extended string capability named name with value
// v, and returns its index. Extended string names go at the very end of
// ExtNames, so no shifting is needed.
func (t *Term) AddExtStr(name string, v *string) int {
	names := dynSeq[string]{data: t.ExtNames}
	names.append(name)
	t.ExtNames = names.data

	strs := dynSeq[*string]{data: t.ExtStrs}
	r := strs.append(v)
	t.ExtStrs = strs.data
	return r
}

// DelExtBool removes extended boolean capability i.
func (t *Term) DelExtBool(i int) {
	if i < 0 || i >= len(t.ExtBools) {
		return
	}
	bools := dynSeq[bool]{data: t.ExtBools}
	bools.deleteAt(i)
	t.ExtBools = bools.data

	names := dynSeq[string]{data: t.ExtNames}
	names.deleteAt(i)
	t.ExtNames = names.data
}

// DelExtNum removes extended numeric capability i.
func (t *Term) DelExtNum(i int) {
	if i < 0 || i >= len(t.ExtNums) {
		return
	}
	nums := dynSeq[int32]{data: t.ExtNums}
	nums.deleteAt(i)
	t.ExtNums = nums.data

	ni := len(t.ExtBools) + i
	names := dynSeq[string]{data: t.ExtNames}
	names.deleteAt(ni)
	t.ExtNames = names.data
}

// DelExtStr removes extended string capability i.
func (t *Term) DelExtStr(i int) {
	if i < 0 || i >= len(t.ExtStrs) {
		return
	}
	strs := dynSeq[*string]{data: t.ExtStrs}
	strs.deleteAt(i)
	t.ExtStrs = strs.data

	ni := len(t.ExtBools) + len(t.ExtNums) + i
	names := dynSeq[string]{data: t.ExtNames}
	names.deleteAt(ni)
	t.ExtNames = names.data
}
