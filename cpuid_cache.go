package cpuid

// CacheLineAssociativity is the decoded L2 associativity field of leaf
// 0x80000006.
type CacheLineAssociativity uint8

const (
	AssociativityUnknown CacheLineAssociativity = iota
	AssociativityDisabled
	AssociativityDirectMapped
	AssociativityTwoWay
	AssociativityFourWay
	AssociativityEightWay
	AssociativitySixteenWay
	AssociativityFull
)

func (a CacheLineAssociativity) String() string {
	switch a {
	case AssociativityDisabled:
		return "disabled"
	case AssociativityDirectMapped:
		return "direct mapped"
	case AssociativityTwoWay:
		return "two-way"
	case AssociativityFourWay:
		return "four-way"
	case AssociativityEightWay:
		return "eight-way"
	case AssociativitySixteenWay:
		return "sixteen-way"
	case AssociativityFull:
		return "fully associative"
	default:
		return "unknown"
	}
}

// CacheLine decodes the L2 cache descriptor of leaf 0x80000006. Only ecx
// carries defined fields on Intel.
type CacheLine struct {
	ecx uint32
}

func newCacheLine(r LeafReader) CacheLine {
	_, _, c, _ := r(LeafCacheLine, 0)
	return CacheLine{ecx: c}
}

// CacheLineSize returns the L2 cache line size in bytes, ecx[0:7].
func (cl CacheLine) CacheLineSize() uint32 {
	return bitsOf(cl.ecx, 0, 7)
}

// L2Associativity maps the 4-bit associativity code in ecx[12:15] to a
// named level. Codes outside the documented table decode as
// AssociativityUnknown, never an error.
func (cl CacheLine) L2Associativity() CacheLineAssociativity {
	switch bitsOf(cl.ecx, 12, 15) {
	case 0x00:
		return AssociativityDisabled
	case 0x01:
		return AssociativityDirectMapped
	case 0x02:
		return AssociativityTwoWay
	case 0x04:
		return AssociativityFourWay
	case 0x06:
		return AssociativityEightWay
	case 0x08:
		return AssociativitySixteenWay
	case 0x0F:
		return AssociativityFull
	default:
		return AssociativityUnknown
	}
}

// CacheSize returns the L2 cache size in kilobytes, ecx[16:31].
func (cl CacheLine) CacheSize() uint32 {
	return bitsOf(cl.ecx, 16, 31)
}
