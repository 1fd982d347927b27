package unibi

import "fmt"

// standardLayout holds the section sizes computed by sizeStandard, reused
// by EncodeStandardInto so the two passes can't disagree.
type standardLayout struct {
	dialect   Dialect
	numSize   int
	namlen    int
	boollen   int
	numlen    int
	strslen   int
	tablsz    int
	extCount  int
	extTbl1   int // ext string bytes
	extTbl2   int // ext name bytes
	total     int
}

// sizeStandard computes the exact encoded size of t in the standard format,
// and picks the narrowest dialect (16-bit numbers unless some numeric
// capability needs more than 15 bits). It returns ErrInvalid if any section
// would overflow the format's 15-bit length fields.
func sizeStandard(t *Term) (*standardLayout, error) {
	if !t.checkExtNames() {
		return nil, invalidf("standard encode: ext name count mismatch")
	}

	l := &standardLayout{numSize: 2}

	l.namlen = len(t.Name) + 1
	for _, a := range t.Aliases {
		l.namlen += len(a) + 1
	}

	l.boollen = trailingLen(len(t.Bools), func(i int) bool { return t.Bools[i] })

	l.numlen = trailingLen(len(t.Nums), func(i int) bool { return t.Nums[i] != absentNum })
	for i := 0; i < l.numlen; i++ {
		if t.Nums[i] > max15Bits {
			if t.Nums[i] > max31Bits {
				return nil, invalidf("standard encode: num[%d] = %d overflows 31 bits", i, t.Nums[i])
			}
			l.numSize = 4
		}
	}

	l.strslen = trailingLen(len(t.Strs), func(i int) bool { return t.Strs[i] != nil })
	for i := 0; i < l.strslen; i++ {
		if t.Strs[i] != nil {
			l.tablsz += len(*t.Strs[i]) + 1
		}
	}
	if l.tablsz > max15Bits {
		return nil, invalidf("standard encode: string table size %d overflows 15 bits", l.tablsz)
	}

	if len(t.ExtBools) > max15Bits || len(t.ExtNums) > max15Bits || len(t.ExtStrs) > max15Bits {
		return nil, invalidf("standard encode: extended capability count overflows 15 bits")
	}
	l.extCount = len(t.ExtBools) + len(t.ExtNums) + len(t.ExtStrs)
	if l.extCount > 0 {
		for _, v := range t.ExtNums {
			if v > max15Bits {
				if v > max31Bits {
					return nil, invalidf("standard encode: ext num %d overflows 31 bits", v)
				}
				l.numSize = 4
			}
		}
		for _, s := range t.ExtStrs {
			if s != nil {
				l.extTbl1 += len(*s) + 1
			}
		}
		if l.extTbl1 > max15Bits {
			return nil, invalidf("standard encode: ext string table size %d overflows 15 bits", l.extTbl1)
		}
		for _, n := range t.ExtNames {
			l.extTbl2 += len(n) + 1
		}
		if l.extTbl2 > max15Bits {
			return nil, invalidf("standard encode: ext name table size %d overflows 15 bits", l.extTbl2)
		}
		if l.extTbl1+l.extTbl2 > max15Bits {
			return nil, invalidf("standard encode: combined ext table size overflows 15 bits")
		}
	}

	if l.numSize == 4 {
		l.dialect = Dialect32
	} else {
		l.dialect = Dialect16
	}

	req := 12 + l.namlen
	req += l.boollen
	if req%2 != 0 {
		req++
	}
	req += l.numlen * l.numSize
	req += l.strslen*2 + l.tablsz
	if l.extCount > 0 {
		if req%2 != 0 {
			req++
		}
		req += 10
		req += len(t.ExtBools)
		if len(t.ExtBools)%2 != 0 {
			req++
		}
		req += len(t.ExtNums) * l.numSize
		req += len(t.ExtStrs) * 2
		req += l.extCount * 2
		req += l.extTbl1 + l.extTbl2
	}
	l.total = req
	return l, nil
}

// trailingLen finds the count of entries needed to cover every "present"
// slot, i.e. 1 + the highest index for which present(i) is true (0 if none
// are present). This mirrors the C encoder's backward scan for boollen,
// numlen and strslen.
func trailingLen(n int, present func(i int) bool) int {
	for i := n - 1; i >= 0; i-- {
		if present(i) {
			return i + 1
		}
	}
	return 0
}

// EncodeStandardSize reports the number of bytes EncodeStandardInto would
// need to write t, without writing anything.
func EncodeStandardSize(t *Term) (int, error) {
	l, err := sizeStandard(t)
	if err != nil {
		return 0, err
	}
	return l.total, nil
}

// EncodeStandardInto writes t into buf in the standard format, returning
// the number of bytes written. If buf is too small, no data is written and
// the returned int is the number of bytes that would have been required;
// the error wraps ErrBufferTooSmall and is not otherwise fatal — the
// caller can grow its buffer and retry.
func EncodeStandardInto(t *Term, buf []byte) (int, error) {
	l, err := sizeStandard(t)
	if err != nil {
		return 0, err
	}
	if len(buf) < l.total {
		return l.total, fmt.Errorf("standard encode: need %d bytes, have %d: %w", l.total, len(buf), ErrBufferTooSmall)
	}

	p := buf
	magic := uint16(magic16Bit)
	if l.dialect == Dialect32 {
		magic = magic32Bit
	}
	putUshort16(p[0:2], magic)
	putUshort16(p[2:4], uint16(l.namlen))
	putUshort16(p[4:6], uint16(l.boollen))
	putUshort16(p[6:8], uint16(l.numlen))
	putUshort16(p[8:10], uint16(l.strslen))
	putUshort16(p[10:12], uint16(l.tablsz))
	p = p[12:]

	p = p[writeNameSection(p, t.Name, t.Aliases):]

	for i := 0; i < l.boollen; i++ {
		if t.Bools[i] {
			p[i] = 1
		} else {
			p[i] = 0
		}
	}
	p = p[l.boollen:]
	if (l.namlen+l.boollen)%2 != 0 {
		p[0] = 0
		p = p[1:]
	}

	for i := 0; i < l.numlen; i++ {
		writeNum(p, i, l.numSize, t.Nums[i])
	}
	p = p[l.numlen*l.numSize:]

	p = p[writeStringSection(p, t.Strs[:l.strslen], l.tablsz):]

	if l.extCount > 0 {
		if l.tablsz%2 != 0 {
			p[0] = 0
			p = p[1:]
		}
		writeExtendedStandard(p, t, l)
	}

	return l.total, nil
}

// EncodeStandard is a convenience wrapper around EncodeStandardSize and
// EncodeStandardInto that allocates its own buffer.
func EncodeStandard(t *Term) ([]byte, error) {
	size, err := EncodeStandardSize(t)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := EncodeStandardInto(t, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// writeNameSection writes the canonical name first, then each alias,
// pipe-separated, NUL-terminated. This is the mirror image of
// decodeNameSection: the wire order here is chosen so the two are inverses
// of each other for this package's Name/Aliases split (name = first field),
// rather than literally replaying unibilium's own byte order (which packs
// the long description, not the canonical name, into its trailing field).
func writeNameSection(p []byte, name string, aliases []string) int {
	n := copy(p, name)
	for _, a := range aliases {
		p[n] = '|'
		n++
		n += copy(p[n:], a)
	}
	p[n] = 0
	n++
	return n
}

func writeNum(p []byte, i, numSize int, v int32) {
	off := i * numSize
	if numSize == 2 {
		putShort16(p[off:off+2], v)
	} else {
		putInt32(p[off:off+4], v)
	}
}

// writeStringSection writes the offset table for strs (length strslen,
// already truncated to the trailing-present count) followed by the packed,
// NUL-terminated string table. It returns the number of bytes written.
func writeStringSection(p []byte, strs []*string, tablsz int) int {
	offs := p[:len(strs)*2]
	table := p[len(strs)*2 : len(strs)*2+tablsz]
	off := 0
	for i, s := range strs {
		if s == nil {
			putShort16(offs[i*2:i*2+2], -1)
			continue
		}
		putShort16(offs[i*2:i*2+2], int32(off))
		off += copy(table[off:], *s)
		table[off] = 0
		off++
	}
	return len(strs)*2 + tablsz
}

func writeExtendedStandard(p []byte, t *Term, l *standardLayout) {
	putUshort16(p[0:2], uint16(len(t.ExtBools)))
	putUshort16(p[2:4], uint16(len(t.ExtNums)))
	putUshort16(p[4:6], uint16(len(t.ExtStrs)))
	putUshort16(p[6:8], uint16(len(t.ExtStrs)+l.extCount))
	putUshort16(p[8:10], uint16(l.extTbl1+l.extTbl2))
	p = p[10:]

	for i, v := range t.ExtBools {
		if v {
			p[i] = 1
		} else {
			p[i] = 0
		}
	}
	p = p[len(t.ExtBools):]
	if len(t.ExtBools)%2 != 0 {
		p[0] = 0
		p = p[1:]
	}

	for i, v := range t.ExtNums {
		writeNum(p, i, l.numSize, v)
	}
	p = p[len(t.ExtNums)*l.numSize:]

	strOffs := p[:len(t.ExtStrs)*2]
	nameOffs := p[len(t.ExtStrs)*2 : len(t.ExtStrs)*2+l.extCount*2]
	tbl1 := p[len(t.ExtStrs)*2+l.extCount*2 : len(t.ExtStrs)*2+l.extCount*2+l.extTbl1]
	tbl2 := p[len(t.ExtStrs)*2+l.extCount*2+l.extTbl1 : len(t.ExtStrs)*2+l.extCount*2+l.extTbl1+l.extTbl2]

	off := 0
	for i, s := range t.ExtStrs {
		if s == nil {
			putShort16(strOffs[i*2:i*2+2], -1)
			continue
		}
		putUshort16(strOffs[i*2:i*2+2], uint16(off))
		off += copy(tbl1[off:], *s)
		tbl1[off] = 0
		off++
	}

	off = 0
	for i, n := range t.ExtNames {
		putUshort16(nameOffs[i*2:i*2+2], uint16(off))
		off += copy(tbl2[off:], n)
		tbl2[off] = 0
		off++
	}
}
