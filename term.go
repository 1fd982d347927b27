package unibi

// Capability counts for the standard set, as fixed by terminfo(5): every
// Term's Bools, Nums and Strs slices are exactly these lengths, indexed by
// the capability's ordinal position in that set.
const (
	BoolCount = 44
	NumCount  = 39
	StrCount  = 414
)

// absentNum is the sentinel value for a numeric capability that has no
// value set (terminfo's -1/"cancelled" convention).
const absentNum = -1

// Term is a decoded compiled terminfo entry: the standard capability set
// plus whatever vendor/user-defined extended capabilities the entry
// carries.
//
// Bools, Nums and Strs always have length BoolCount, NumCount and StrCount
// respectively, regardless of which dialect or alternate format the entry
// was decoded from; capabilities the entry didn't set read back as their
// absent value (false, absentNum, nil).
//
// ExtNames holds the names of the extended capabilities, partitioned into
// three contiguous runs in a fixed order: first len(ExtBools) bool names,
// then len(ExtNums) number names, then len(ExtStrs) string names. So
// ExtNames[len(ExtBools)+i] is the name of ExtNums[i], and so on.
type Term struct {
	Name    string
	Aliases []string

	Bools []bool
	Nums  []int32
	Strs  []*string

	ExtBools []bool
	ExtNums  []int32
	ExtStrs  []*string
	ExtNames []string
}

// Dummy returns a Term with the standard capability arrays allocated at
// their full size and nothing set, matching unibilium's "dummy" entry: a
// minimal, valid, entirely-absent terminal description suitable as a
// starting point for building one up by hand.
func Dummy() *Term {
	t := &Term{
		Name:    "unibilium dummy terminal",
		Aliases: []string{"null"},
		Bools:   make([]bool, BoolCount),
		Nums:    make([]int32, NumCount),
		Strs:    make([]*string, StrCount),
	}
	for i := range t.Nums {
		t.Nums[i] = absentNum
	}
	return t
}

// Dispose releases t's storage by resetting it to the zero value. Present
// mainly so callers that mirror unibilium's explicit free() convention have
// something to call; Go's GC does the actual reclaiming.
func (t *Term) Dispose() {
	*t = Term{}
}

// checkExtNames reports whether ExtNames is partitioned consistently with
// ExtBools, ExtNums and ExtStrs, per the invariant documented on Term.
func (t *Term) checkExtNames() bool {
	return len(t.ExtNames) == len(t.ExtBools)+len(t.ExtNums)+len(t.ExtStrs)
}
