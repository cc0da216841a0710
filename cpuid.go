// Package cpuid provides information about the CPU running the current program.
//
// All data comes from the processor identification instruction. A Snapshot
// queries the maximum supported basic and extended leaves once, then decodes
// only the leaves the CPU declares supported; every feature accessor on a
// Snapshot is safe to call regardless of what the hardware reports.
package cpuid

// Leaf codes understood by this package. The numeric value doubles as the
// ordinal compared against the CPU's declared maximum: basic leaves are
// gated by leaf 0, extended leaves by leaf 0x80000000.
const (
	LeafBasicInformation           uint32 = 0x00000000
	LeafVersionInformation         uint32 = 0x00000001
	LeafThermalPowerManagement     uint32 = 0x00000006
	LeafStructuredExtended         uint32 = 0x00000007
	LeafExtendedFunction           uint32 = 0x80000000
	LeafExtendedProcessorSignature uint32 = 0x80000001
	LeafBrandString1               uint32 = 0x80000002
	LeafBrandString2               uint32 = 0x80000003
	LeafBrandString3               uint32 = 0x80000004
	// 0x80000005 is reserved on Intel
	LeafCacheLine           uint32 = 0x80000006
	LeafTimeStampCounter    uint32 = 0x80000007
	LeafPhysicalAddressSize uint32 = 0x80000008
)

// LeafReader issues one identification query for the given leaf and sub-leaf
// and returns the four resulting registers. The register contents are only
// meaningful for leaves the CPU declares supported; interpreting anything
// else is the caller's bug, not the reader's.
//
// HardwareReader is the real implementation. Tests and offline replay
// substitute their own.
type LeafReader func(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// HardwareReader executes the identification instruction on the CPU running
// the current goroutine. On architectures without the instruction every leaf
// reads as zero, so all features report unsupported.
func HardwareReader(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, subleaf)
}

// maxFunctions returns the maximum basic and extended leaf values the CPU
// reports through leaf 0 and leaf 0x80000000.
func maxFunctions(r LeafReader) (uint32, uint32) {
	maxFunc, _, _, _ := r(LeafBasicInformation, 0)
	maxExtFunc, _, _, _ := r(LeafExtendedFunction, 0)
	return maxFunc, maxExtFunc
}

func int32ToBytes(i uint32) []byte {
	return []byte{byte(i), byte(i >> 8), byte(i >> 16), byte(i >> 24)}
}

// vendorString reassembles the vendor identification bytes of leaf 0.
// The documented order is ebx, edx, ecx ("Genu", "ineI", "ntel").
func vendorString(b, c, d uint32) string {
	id := make([]byte, 0, 12)
	id = append(id, int32ToBytes(b)...)
	id = append(id, int32ToBytes(d)...)
	id = append(id, int32ToBytes(c)...)
	return string(id)
}
