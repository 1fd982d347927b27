package unibi

import (
	"bytes"
	"strings"
)

// DecodeStandard parses a compiled terminfo entry in the standard ncurses
// binary format (either the legacy 16-bit-number dialect or the 32-bit-
// number dialect; the magic number in the header picks which). It reports
// which dialect it found. EncodeStandard does not take a dialect: it always
// picks the narrowest one that fits, so an entry read as 32-bit whose
// numbers all fit in 15 bits is written back as 16-bit.
func DecodeStandard(buf []byte) (*Term, Dialect, error) {
	if len(buf) < 12 {
		return nil, 0, truncatedf("standard header: need 12 bytes, got %d", len(buf))
	}

	var dialect Dialect
	var numSize int
	switch magic := getUshort16(buf[0:2]); magic {
	case magic16Bit:
		dialect, numSize = Dialect16, 2
	case magic32Bit:
		dialect, numSize = Dialect32, 4
	default:
		return nil, 0, invalidf("standard header: unrecognized magic %#o", magic)
	}

	namlen := int(getUshort16(buf[2:4]))
	boollen := int(getUshort16(buf[4:6]))
	numlen := int(getUshort16(buf[6:8]))
	strslen := int(getUshort16(buf[8:10]))
	tablsz := int(getUshort16(buf[10:12]))
	p := buf[12:]

	if len(p) < namlen {
		return nil, 0, truncatedf("standard name section: need %d bytes, got %d", namlen, len(p))
	}
	name, aliases, err := decodeNameSection(p[:namlen])
	if err != nil {
		return nil, 0, err
	}
	p = p[namlen:]

	if len(p) < boollen {
		return nil, 0, truncatedf("standard bool section: need %d bytes, got %d", boollen, len(p))
	}
	bools := make([]bool, BoolCount)
	for i := 0; i < boollen && i < BoolCount; i++ {
		bools[i] = p[i] != 0
	}
	p = p[boollen:]
	if (namlen+boollen)%2 == 1 && len(p) > 0 {
		p = p[1:]
	}

	if len(p) < numlen*numSize {
		return nil, 0, truncatedf("standard number section: need %d bytes, got %d", numlen*numSize, len(p))
	}
	nums := make([]int32, NumCount)
	for i := range nums {
		nums[i] = absentNum
	}
	for i := 0; i < numlen && i < NumCount; i++ {
		nums[i] = readNum(p, i, numSize)
	}
	p = p[numlen*numSize:]

	if len(p) < strslen*2 {
		return nil, 0, truncatedf("standard string offset table: need %d bytes, got %d", strslen*2, len(p))
	}
	offs := p[:strslen*2]
	p = p[strslen*2:]
	if len(p) < tablsz {
		return nil, 0, truncatedf("standard string table: need %d bytes, got %d", tablsz, len(p))
	}
	table := p[:tablsz]
	p = p[tablsz:]

	strs := make([]*string, StrCount)
	for i := 0; i < strslen && i < StrCount; i++ {
		strs[i] = readTableString(table, getShort16(offs[i*2:i*2+2]))
	}
	if tablsz%2 == 1 && len(p) > 0 {
		p = p[1:]
	}

	t := &Term{
		Name:    name,
		Aliases: aliases,
		Bools:   bools,
		Nums:    nums,
		Strs:    strs,
	}

	if len(p) >= 10 {
		if err := decodeExtendedStandard(t, p, numSize); err != nil {
			return nil, 0, err
		}
	}
	if !t.checkExtNames() {
		return nil, 0, invalidf("standard extended section: name count mismatch")
	}

	return t, dialect, nil
}

// decodeNameSection splits the raw name-section bytes (name then aliases,
// pipe-joined, NUL-terminated — see EncodeStandard) back into a canonical
// name and its aliases.
func decodeNameSection(raw []byte) (name string, aliases []string, err error) {
	if len(raw) == 0 {
		return "", nil, invalidf("standard name section: empty")
	}
	if raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	parts := strings.Split(string(raw), "|")
	return parts[0], parts[1:], nil
}

func readNum(p []byte, i, numSize int) int32 {
	off := i * numSize
	if numSize == 2 {
		return getShort16(p[off : off+2])
	}
	return getInt32(p[off : off+4])
}

// readTableString resolves a signed 16-bit offset into a string table,
// NUL-terminated; a negative offset, or one past the end of the table,
// means "absent".
func readTableString(table []byte, off int32) *string {
	if off < 0 || int(off) >= len(table) {
		return nil
	}
	rest := table[off:]
	end := bytes.IndexByte(rest, 0)
	var s string
	if end >= 0 {
		s = string(rest[:end])
	} else {
		s = string(rest)
	}
	return &s
}

// decodeExtendedStandard parses the extended/user-defined capability
// section that may follow the standard string table. p starts at the
// 5-field 16-bit extended header.
func decodeExtendedStandard(t *Term, p []byte, numSize int) error {
	eb := int(getUshort16(p[0:2]))
	en := int(getUshort16(p[2:4]))
	es := int(getUshort16(p[4:6]))
	eo := int(getUshort16(p[6:8]))
	et := int(getUshort16(p[8:10]))

	if eb > max15Bits || en > max15Bits || es > max15Bits || eo > max15Bits || et > max15Bits {
		// Per the format, an out-of-range extended header means there is no
		// usable extended section at all; it is not an error.
		return nil
	}
	p = p[10:]

	extAllLen := eb + en + es
	needed := eb + eb%2 + en*numSize + es*2 + extAllLen*2 + et
	if len(p) < needed {
		return truncatedf("standard extended section: need %d bytes, got %d", needed, len(p))
	}
	if eo != es+extAllLen {
		return invalidf("standard extended section: offset-table count %d does not match es+ext_count %d", eo, es+extAllLen)
	}

	extBools := make([]bool, eb)
	for i := 0; i < eb; i++ {
		extBools[i] = p[i] != 0
	}
	p = p[eb:]
	if eb%2 == 1 {
		p = p[1:]
	}

	extNums := make([]int32, en)
	for i := 0; i < en; i++ {
		extNums[i] = readNum(p, i, numSize)
	}
	p = p[en*numSize:]

	strOffs := p[:es*2]
	nameOffs := p[es*2 : es*2+extAllLen*2]
	table := p[es*2+extAllLen*2 : es*2+extAllLen*2+et]

	extStrs := make([]*string, es)
	sMax, sSum := 0, 0
	for i := 0; i < es; i++ {
		v := getShort16(strOffs[i*2 : i*2+2])
		if v < 0 || int(v) >= et {
			continue
		}
		start := int(v)
		rest := table[start:]
		end := bytes.IndexByte(rest, 0)
		var endPos int
		if end >= 0 {
			endPos = start + end + 1
		} else {
			endPos = et
		}
		sSum += endPos - start
		if endPos > sMax {
			sMax = endPos
		}
		s := string(table[start : endPos-1])
		extStrs[i] = &s
	}
	if sMax != sSum {
		return invalidf("standard extended section: string region end %d does not match total string bytes %d", sMax, sSum)
	}

	tblsz2 := et - sSum
	names := make([]string, extAllLen)
	for i := 0; i < extAllLen; i++ {
		v := getShort16(nameOffs[i*2 : i*2+2])
		if v < 0 || int(v) >= tblsz2 {
			return invalidf("standard extended section: name offset %d out of range [0, %d)", v, tblsz2)
		}
		start := sSum + int(v)
		rest := table[start:]
		end := bytes.IndexByte(rest, 0)
		var s string
		if end >= 0 {
			s = string(rest[:end])
		} else {
			s = string(rest)
		}
		names[i] = s
	}

	t.ExtBools = extBools
	t.ExtNums = extNums
	t.ExtStrs = extStrs
	t.ExtNames = names
	return nil
}
