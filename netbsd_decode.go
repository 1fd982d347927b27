package unibi

import "strings"

// DecodeNetBSD parses a terminfo entry in NetBSD curses' own binary
// format, distinct from the standard ncurses format DecodeStandard reads.
// The leading byte is a format tag: 1 means "entry follows inline" (what
// this function handles); 2 means "this is an alias, look up the real
// entry elsewhere" — that indirection is a terminfo-database concern
// resolved by the caller before the bytes ever reach a decoder, so it is
// reported as an error here rather than followed.
//
// remap supplies the mapping from NetBSD's capability ordinals to this
// package's standard ordinals; see NetBSDRemap.
func DecodeNetBSD(buf []byte, remap *NetBSDRemap) (*Term, error) {
	if len(buf) < 1 {
		return nil, truncatedf("netbsd entry: empty")
	}
	switch tag := buf[0]; tag {
	case 1:
		// inline entry, handled below.
	case 2:
		return nil, invalidf("netbsd entry: tag 2 is a database alias, not an inline entry")
	default:
		return nil, invalidf("netbsd entry: unrecognized tag %d", tag)
	}
	p := buf[1:]

	name, p, err := readLenPrefixed(p)
	if err != nil {
		return nil, err
	}
	aliasBlob, p, err := readLenPrefixed(p)
	if err != nil {
		return nil, err
	}
	desc, p, err := readLenPrefixed(p)
	if err != nil {
		return nil, err
	}

	var aliases []string
	if len(aliasBlob) > 0 {
		aliases = strings.Split(string(aliasBlob), "|")
	}
	if len(desc) > 0 {
		aliases = append(aliases, string(desc))
	}

	t := &Term{
		Name:    string(name),
		Aliases: aliases,
		Bools:   make([]bool, BoolCount),
		Nums:    make([]int32, NumCount),
		Strs:    make([]*string, StrCount),
	}
	for i := range t.Nums {
		t.Nums[i] = absentNum
	}

	p, err = decodeNetBSDBools(t, p, remap)
	if err != nil {
		return nil, err
	}
	p, err = decodeNetBSDNums(t, p, remap)
	if err != nil {
		return nil, err
	}
	p, err = decodeNetBSDStrs(t, p, remap)
	if err != nil {
		return nil, err
	}

	if len(p) > 0 {
		if err := decodeNetBSDExtended(t, p); err != nil {
			return nil, err
		}
	}

	if !t.checkExtNames() {
		return nil, invalidf("netbsd entry: ext name count mismatch")
	}
	return t, nil
}

// readLenPrefixed reads a 16-bit-length-prefixed byte string and returns
// it along with the remaining input.
func readLenPrefixed(p []byte) (s, rest []byte, err error) {
	if len(p) < 2 {
		return nil, nil, truncatedf("netbsd length-prefixed string: need 2 bytes, got %d", len(p))
	}
	n := int(getUshort16(p[0:2]))
	p = p[2:]
	if len(p) < n {
		return nil, nil, truncatedf("netbsd length-prefixed string: need %d bytes, got %d", n, len(p))
	}
	return p[:n], p[n:], nil
}

// decodeNetBSDBools reads the bool capability list: a two-field count
// header (see readDoubledCount), followed by that many (ordinal uint16,
// value byte) pairs.
func decodeNetBSDBools(t *Term, p []byte, remap *NetBSDRemap) ([]byte, error) {
	n, p, err := readDoubledCount(p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if len(p) < 3 {
			return nil, truncatedf("netbsd bool list: need 3 bytes, got %d", len(p))
		}
		idx := int(getUshort16(p[0:2]))
		v := p[2] != 0
		p = p[3:]
		if std, ok := remap.boolStd(idx); ok && std < len(t.Bools) {
			t.Bools[std] = v
		}
	}
	return p, nil
}

// decodeNetBSDNums mirrors decodeNetBSDBools for numeric capabilities,
// whose values are plain (not terminfo-sentinel-encoded) 16-bit integers.
func decodeNetBSDNums(t *Term, p []byte, remap *NetBSDRemap) ([]byte, error) {
	n, p, err := readDoubledCount(p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if len(p) < 4 {
			return nil, truncatedf("netbsd num list: need 4 bytes, got %d", len(p))
		}
		idx := int(getUshort16(p[0:2]))
		v := int32(getUshort16(p[2:4]))
		p = p[4:]
		if std, ok := remap.numStd(idx); ok && std < len(t.Nums) {
			t.Nums[std] = v
		}
	}
	return p, nil
}

// decodeNetBSDStrs mirrors decodeNetBSDBools for string capabilities:
// (ordinal uint16, length uint16, bytes) entries.
func decodeNetBSDStrs(t *Term, p []byte, remap *NetBSDRemap) ([]byte, error) {
	n, p, err := readDoubledCount(p)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if len(p) < 4 {
			return nil, truncatedf("netbsd string list: need 4 bytes, got %d", len(p))
		}
		idx := int(getUshort16(p[0:2]))
		slen := int(getUshort16(p[2:4]))
		p = p[4:]
		if len(p) < slen {
			return nil, truncatedf("netbsd string list: need %d bytes, got %d", slen, len(p))
		}
		s := string(p[:slen])
		p = p[slen:]
		if std, ok := remap.strStd(idx); ok && std < len(t.Strs) {
			t.Strs[std] = &s
		}
	}
	return p, nil
}

// readDoubledCount reads the format's two-field list header: a presence
// field, and, if it's nonzero, the real repeat count that follows it. Both
// fields are 16-bit. A zero presence field means an empty list with no
// further count field present.
func readDoubledCount(p []byte) (int, []byte, error) {
	if len(p) < 2 {
		return 0, nil, truncatedf("netbsd list header: need 2 bytes, got %d", len(p))
	}
	present := getUshort16(p[0:2])
	p = p[2:]
	if present == 0 {
		return 0, p, nil
	}
	if len(p) < 2 {
		return 0, nil, truncatedf("netbsd list header: need 2 bytes, got %d", len(p))
	}
	n := int(getUshort16(p[0:2]))
	return n, p[2:], nil
}

// decodeNetBSDExtended parses the tagged extended-capability section that
// follows the three standard lists: a doubled count header, then that many
// (name-length uint16, name bytes, type byte, value) entries, where type is
// 'f' (bool, 1-byte value), 'n' (number, 2-byte value) or 's' (string,
// 2-byte length + bytes).
func decodeNetBSDExtended(t *Term, p []byte) error {
	n, p, err := readDoubledCount(p)
	if err != nil {
		return err
	}
	var extBools []bool
	var extNums []int32
	var extStrs []*string
	var boolNames, numNames, strNames []string

	for i := 0; i < n; i++ {
		if len(p) < 2 {
			return truncatedf("netbsd extended entry: need 2 bytes, got %d", len(p))
		}
		nlen := int(getUshort16(p[0:2]))
		p = p[2:]
		if len(p) < nlen+1 {
			return truncatedf("netbsd extended entry: need %d bytes, got %d", nlen+1, len(p))
		}
		name := string(p[:nlen])
		p = p[nlen:]
		kind := p[0]
		p = p[1:]
		switch kind {
		case 'f':
			if len(p) < 1 {
				return truncatedf("netbsd extended bool: need 1 byte, got %d", len(p))
			}
			extBools = append(extBools, p[0] != 0)
			boolNames = append(boolNames, name)
			p = p[1:]
		case 'n':
			if len(p) < 2 {
				return truncatedf("netbsd extended num: need 2 bytes, got %d", len(p))
			}
			extNums = append(extNums, int32(getUshort16(p[0:2])))
			numNames = append(numNames, name)
			p = p[2:]
		case 's':
			if len(p) < 2 {
				return truncatedf("netbsd extended string: need 2 bytes, got %d", len(p))
			}
			slen := int(getUshort16(p[0:2]))
			p = p[2:]
			if len(p) < slen {
				return truncatedf("netbsd extended string: need %d bytes, got %d", slen, len(p))
			}
			s := string(p[:slen])
			extStrs = append(extStrs, &s)
			strNames = append(strNames, name)
			p = p[slen:]
		default:
			return invalidf("netbsd extended entry: unrecognized type byte %q", kind)
		}
	}

	t.ExtBools = extBools
	t.ExtNums = extNums
	t.ExtStrs = extStrs
	t.ExtNames = append(append(boolNames, numNames...), strNames...)
	return nil
}
