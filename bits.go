package cpuid

// bitsOf extracts the inclusive bit range [start, end] of val, right-aligned
// to bit 0. Bit positions follow the Intel Architecture guide convention,
// 0 being the least significant bit. The full range [0, 31] returns val
// unchanged: a shift count of 32 on a uint32 yields 0 in Go, so the mask
// computes to all ones without overflow.
func bitsOf(val uint32, start, end uint8) uint32 {
	mask := uint32(1)<<(end-start+1) - 1
	return (val >> start) & mask
}

// bit reports whether bit idx of val is set.
func bit(val uint32, idx uint8) bool {
	return (val>>idx)&1 != 0
}
