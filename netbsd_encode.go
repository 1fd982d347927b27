package unibi

import "strings"

// EncodeNetBSD writes t into the NetBSD curses binary format using remap
// to translate standard ordinals back into NetBSD's own ordinal space.
// Standard capabilities with no NetBSD counterpart (remap reports none)
// are skipped from the three fixed-format lists and instead written into
// the trailing extended section, named with an "OT" prefix (NetBSD's own
// convention for "old termcap" capabilities it has no direct slot for) so
// a decoder without the original standard name can still tell these apart
// from genuinely user-defined extensions.
func EncodeNetBSD(t *Term, remap *NetBSDRemap) ([]byte, error) {
	if !t.checkExtNames() {
		return nil, invalidf("netbsd encode: ext name count mismatch")
	}

	var buf []byte
	buf = append(buf, 1)
	buf = appendLenPrefixed(buf, []byte(t.Name))

	aliases := t.Aliases
	var desc string
	if len(aliases) > 0 {
		desc = aliases[len(aliases)-1]
		aliases = aliases[:len(aliases)-1]
	}
	buf = appendLenPrefixed(buf, []byte(strings.Join(aliases, "|")))
	buf = appendLenPrefixed(buf, []byte(desc))

	var otBools []int
	var otNums []otNum
	var otStrs []otStr
	buf = appendNetBSDBools(buf, t, remap, &otBools)
	buf = appendNetBSDNums(buf, t, remap, &otNums)
	buf = appendNetBSDStrs(buf, t, remap, &otStrs)
	buf = appendNetBSDExtended(buf, t, otBools, otNums, otStrs)

	return buf, nil
}

// otNum and otStr carry a standard ordinal and its value for a capability
// that has no NetBSD ordinal slot, so appendNetBSDExtended can still write
// its real value into the extended section instead of dropping it.
type otNum struct {
	std int
	v   int32
}

type otStr struct {
	std int
	s   string
}

func appendLenPrefixed(buf, s []byte) []byte {
	var lenBuf [2]byte
	putUshort16(lenBuf[:], uint16(len(s)))
	buf = append(buf, lenBuf[:]...)
	return append(buf, s...)
}

func appendDoubledCount(buf []byte, n int) []byte {
	var b [2]byte
	if n == 0 {
		putUshort16(b[:], 0)
		return append(buf, b[:]...)
	}
	putUshort16(b[:], 1) // presence field: any nonzero value signals "count follows"
	buf = append(buf, b[:]...)
	putUshort16(b[:], uint16(n))
	return append(buf, b[:]...)
}

// appendNetBSDBools writes the bool list for every standard bool ordinal
// that has a NetBSD counterpart and is true; ordinals with no counterpart
// are appended to *overflow for the extended section instead.
func appendNetBSDBools(buf []byte, t *Term, remap *NetBSDRemap, overflow *[]int) []byte {
	type entry struct {
		idx int
		v   bool
	}
	var entries []entry
	for std, v := range t.Bools {
		if !v {
			continue
		}
		if idx, ok := reverseIndex(remap.BoolToStd, std); ok {
			entries = append(entries, entry{idx, v})
		} else {
			*overflow = append(*overflow, std)
		}
	}
	buf = appendDoubledCount(buf, len(entries))
	for _, e := range entries {
		var b [2]byte
		putUshort16(b[:], uint16(e.idx))
		buf = append(buf, b[:]...)
		if e.v {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return buf
}

func appendNetBSDNums(buf []byte, t *Term, remap *NetBSDRemap, overflow *[]otNum) []byte {
	type entry struct {
		idx int
		v   int32
	}
	var entries []entry
	for std, v := range t.Nums {
		if v == absentNum {
			continue
		}
		if idx, ok := reverseIndex(remap.NumToStd, std); ok {
			entries = append(entries, entry{idx, v})
		} else {
			*overflow = append(*overflow, otNum{std, v})
		}
	}
	buf = appendDoubledCount(buf, len(entries))
	for _, e := range entries {
		var b [2]byte
		putUshort16(b[:], uint16(e.idx))
		buf = append(buf, b[:]...)
		putUshort16(b[:], uint16(e.v))
		buf = append(buf, b[:]...)
	}
	return buf
}

func appendNetBSDStrs(buf []byte, t *Term, remap *NetBSDRemap, overflow *[]otStr) []byte {
	type entry struct {
		idx int
		s   string
	}
	var entries []entry
	for std, s := range t.Strs {
		if s == nil {
			continue
		}
		if idx, ok := reverseIndex(remap.StrToStd, std); ok {
			entries = append(entries, entry{idx, *s})
		} else {
			*overflow = append(*overflow, otStr{std, *s})
		}
	}
	buf = appendDoubledCount(buf, len(entries))
	for _, e := range entries {
		var b [2]byte
		putUshort16(b[:], uint16(e.idx))
		buf = append(buf, b[:]...)
		buf = appendLenPrefixed(buf, []byte(e.s))
	}
	return buf
}

// appendNetBSDExtended writes the trailing tagged extended section: every
// genuine extended capability from t, plus every standard capability that
// had no NetBSD-ordinal counterpart (collected into otBools/otNums/otStrs
// by the three list writers above), named "OT" followed by its standard
// ordinal in decimal, so it round-trips through a plain extended-capability
// decoder even without remap.
func appendNetBSDExtended(buf []byte, t *Term, otBools []int, otNums []otNum, otStrs []otStr) []byte {
	type entry struct {
		name string
		kind byte
		b    bool
		n    int32
		s    string
	}
	var entries []entry

	numStart := len(t.ExtBools)
	strStart := len(t.ExtBools) + len(t.ExtNums)
	for i, v := range t.ExtBools {
		entries = append(entries, entry{name: t.ExtNames[i], kind: 'f', b: v})
	}
	for i, v := range t.ExtNums {
		entries = append(entries, entry{name: t.ExtNames[numStart+i], kind: 'n', n: v})
	}
	for i, s := range t.ExtStrs {
		name := t.ExtNames[strStart+i]
		var v string
		if s != nil {
			v = *s
		}
		entries = append(entries, entry{name: name, kind: 's', s: v})
	}
	for _, std := range otBools {
		entries = append(entries, entry{name: "OT" + ordinalName(std), kind: 'f', b: true})
	}
	for _, o := range otNums {
		entries = append(entries, entry{name: "OT" + ordinalName(o.std), kind: 'n', n: o.v})
	}
	for _, o := range otStrs {
		entries = append(entries, entry{name: "OT" + ordinalName(o.std), kind: 's', s: o.s})
	}

	buf = appendDoubledCount(buf, len(entries))
	for _, e := range entries {
		buf = appendLenPrefixed(buf, []byte(e.name))
		buf = append(buf, e.kind)
		switch e.kind {
		case 'f':
			if e.b {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		case 'n':
			var b [2]byte
			putUshort16(b[:], uint16(e.n))
			buf = append(buf, b[:]...)
		case 's':
			buf = appendLenPrefixed(buf, []byte(e.s))
		}
	}
	return buf
}

// ordinalName names a standard capability that has no NetBSD ordinal
// slot by its position: it returns std in decimal. This package carries
// no capability name table, so no real capability name is used here.
func ordinalName(std int) string {
	const digits = "0123456789"
	if std == 0 {
		return "0"
	}
	var out []byte
	for std > 0 {
		out = append([]byte{digits[std%10]}, out...)
		std /= 10
	}
	return string(out)
}
