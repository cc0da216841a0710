package cpuid

// StructuredExtendedInformation decodes leaf 7, sub-leaf 0. Only the ebx and
// ecx flags covered here are interpreted; further sub-leaves are not queried.
type StructuredExtendedInformation struct {
	ebx uint32
	ecx uint32
}

func newStructuredExtendedInformation(r LeafReader) StructuredExtendedInformation {
	_, b, c, _ := r(LeafStructuredExtended, 0)
	return StructuredExtendedInformation{ebx: b, ecx: c}
}

func (s StructuredExtendedInformation) FSGSBASE() bool         { return bit(s.ebx, 0) }
func (s StructuredExtendedInformation) IA32TSCAdjustMSR() bool { return bit(s.ebx, 1) }

// 2 - reserved

func (s StructuredExtendedInformation) BMI1() bool { return bit(s.ebx, 3) }
func (s StructuredExtendedInformation) HLE() bool  { return bit(s.ebx, 4) }
func (s StructuredExtendedInformation) AVX2() bool { return bit(s.ebx, 5) }

// 6 - reserved

func (s StructuredExtendedInformation) SMEP() bool { return bit(s.ebx, 7) }
func (s StructuredExtendedInformation) BMI2() bool { return bit(s.ebx, 8) }
func (s StructuredExtendedInformation) EnhancedRepMovsbStosb() bool {
	return bit(s.ebx, 9)
}
func (s StructuredExtendedInformation) INVPCID() bool           { return bit(s.ebx, 10) }
func (s StructuredExtendedInformation) RTM() bool               { return bit(s.ebx, 11) }
func (s StructuredExtendedInformation) PQM() bool               { return bit(s.ebx, 12) }
func (s StructuredExtendedInformation) DeprecatesFPUCSDS() bool { return bit(s.ebx, 13) }

// 14 - reserved

func (s StructuredExtendedInformation) PQE() bool { return bit(s.ebx, 15) }

// 16-17 - reserved

func (s StructuredExtendedInformation) RDSEED() bool { return bit(s.ebx, 18) }
func (s StructuredExtendedInformation) ADX() bool    { return bit(s.ebx, 19) }
func (s StructuredExtendedInformation) SMAP() bool   { return bit(s.ebx, 20) }

// 21-24 - reserved

func (s StructuredExtendedInformation) IntelProcessorTrace() bool { return bit(s.ebx, 25) }

// 26-31 - reserved

func (s StructuredExtendedInformation) PREFETCHWT1() bool { return bit(s.ecx, 0) }
