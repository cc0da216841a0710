package cpuid

import "strings"

// brandStringLength is 3 leaves of 4 registers of 4 bytes each.
const brandStringLength = 3 * 4 * 4

// BrandString holds the 48-byte processor marketing name populated from
// leaves 0x80000002 through 0x80000004.
type BrandString struct {
	bytes [brandStringLength]byte
}

func newBrandString(r LeafReader) BrandString {
	var bs BrandString
	for i, leaf := range []uint32{LeafBrandString1, LeafBrandString2, LeafBrandString3} {
		a, b, c, d := r(leaf, 0)
		copy(bs.bytes[i*16:], int32ToBytes(a))
		copy(bs.bytes[i*16+4:], int32ToBytes(b))
		copy(bs.bytes[i*16+8:], int32ToBytes(c))
		copy(bs.bytes[i*16+12:], int32ToBytes(d))
	}
	return bs
}

// String returns the brand text truncated at the first null byte and
// trimmed of surrounding whitespace. A buffer with no null terminator at
// all decodes as empty, the same as one starting with a null byte.
func (bs BrandString) String() string {
	nul := strings.IndexByte(string(bs.bytes[:]), 0)
	if nul < 0 {
		nul = 0
	}
	return strings.TrimSpace(string(bs.bytes[:nul]))
}
