package cpuid

// VersionInformation decodes leaf 1: processor signature, the brand index
// fallback table, and the ecx/edx feature flags.
//
// Each flag method corresponds to a single capability and is named after
// the feature mnemonic listed in the Intel Instruction Set Reference.
// Reserved bit positions have no accessor.
type VersionInformation struct {
	eax uint32
	ebx uint32
	ecx uint32
	edx uint32
}

func newVersionInformation(r LeafReader) VersionInformation {
	a, b, c, d := r(LeafVersionInformation, 0)
	return VersionInformation{eax: a, ebx: b, ecx: c, edx: d}
}

// FamilyID returns the display family. The base family in eax[8:11] is the
// answer unless it holds the escape value 0x0F, in which case the extended
// family in eax[20:27] is added on.
func (v VersionInformation) FamilyID() uint32 {
	familyID := bitsOf(v.eax, 8, 11)
	if familyID != 0x0F {
		return familyID
	}
	return bitsOf(v.eax, 20, 27) + familyID
}

// ModelID returns the display model. For families 0x06 and 0x0F the
// extended model in eax[16:19] forms the high nibble; everything else uses
// the base model in eax[4:7] alone.
func (v VersionInformation) ModelID() uint32 {
	familyID := v.FamilyID()
	modelID := bitsOf(v.eax, 4, 7)
	if familyID == 0x06 || familyID == 0x0F {
		return bitsOf(v.eax, 16, 19)<<4 + modelID
	}
	return modelID
}

// Stepping returns the stepping id in eax[0:3].
func (v VersionInformation) Stepping() uint32 {
	return bitsOf(v.eax, 0, 3)
}

func (v VersionInformation) processorSignature() uint32 {
	return v.eax
}

// BrandString looks the brand index in ebx[0:7] up in the fixed table of
// marketing names. Two index values are ambiguous and resolved against the
// raw processor signature. Indexes without a table entry report no name,
// never an error. Prefer Snapshot.BrandString, which uses the 48-byte brand
// string leaves when the CPU has them.
func (v VersionInformation) BrandString() (string, bool) {
	brandIndex := bitsOf(v.ebx, 0, 7)
	signature := v.processorSignature()

	switch brandIndex {
	case 0x01:
		return "Intel(R) Celeron(R)", true
	case 0x02:
		return "Intel(R) Pentium(R) III", true
	case 0x03:
		if signature == 0x06B1 {
			return "Intel(R) Celeron(R)", true
		}
		return "Intel(R) Pentium(R) III Xeon(R)", true
	case 0x04:
		return "Intel(R) Pentium(R) III", true
	case 0x06:
		return "Mobile Intel(R) Pentium(R) III-M", true
	case 0x07:
		return "Mobile Intel(R) Celeron(R)", true
	case 0x08:
		return "Intel(R) Pentium(R) 4", true
	case 0x09:
		return "Intel(R) Pentium(R) 4", true
	case 0x0A:
		return "Intel(R) Celeron(R)", true
	case 0x0B:
		if signature == 0x0F13 {
			return "Intel(R) Xeon(R) MP", true
		}
		return "Intel(R) Xeon(R)", true
	case 0x0C:
		return "Intel(R) Xeon(R) MP", true
	case 0x0E:
		if signature == 0x0F13 {
			return "Intel(R) Xeon(R)", true
		}
		return "Mobile Intel(R) Pentium(R) 4-M", true
	case 0x0F:
		return "Mobile Intel(R) Celeron(R)", true
	case 0x11:
		return "Mobile Genuine Intel(R)", true
	case 0x12:
		return "Intel(R) Celeron(R) M", true
	case 0x13:
		return "Mobile Intel(R) Celeron(R)", true
	case 0x14:
		return "Intel(R) Celeron(R)", true
	case 0x15:
		return "Mobile Genuine Intel(R)", true
	case 0x16:
		return "Intel(R) Pentium(R) M", true
	case 0x17:
		return "Mobile Intel(R) Celeron(R)", true
	default:
		// 0x00 means no brand index; other values are unassigned.
		return "", false
	}
}

// ecx flags

func (v VersionInformation) SSE3() bool              { return bit(v.ecx, 0) }
func (v VersionInformation) PCLMULQDQ() bool         { return bit(v.ecx, 1) }
func (v VersionInformation) DTES64() bool            { return bit(v.ecx, 2) }
func (v VersionInformation) MONITOR() bool           { return bit(v.ecx, 3) }
func (v VersionInformation) DSCPL() bool             { return bit(v.ecx, 4) }
func (v VersionInformation) VMX() bool               { return bit(v.ecx, 5) }
func (v VersionInformation) SMX() bool               { return bit(v.ecx, 6) }
func (v VersionInformation) EIST() bool              { return bit(v.ecx, 7) }
func (v VersionInformation) TM2() bool               { return bit(v.ecx, 8) }
func (v VersionInformation) SSSE3() bool             { return bit(v.ecx, 9) }
func (v VersionInformation) CNXTID() bool            { return bit(v.ecx, 10) }
func (v VersionInformation) SDBG() bool              { return bit(v.ecx, 11) }
func (v VersionInformation) FMA() bool               { return bit(v.ecx, 12) }
func (v VersionInformation) CMPXCHG16B() bool        { return bit(v.ecx, 13) }
func (v VersionInformation) XTPRUpdateControl() bool { return bit(v.ecx, 14) }
func (v VersionInformation) PDCM() bool              { return bit(v.ecx, 15) }

// 16 - reserved

func (v VersionInformation) PCID() bool        { return bit(v.ecx, 17) }
func (v VersionInformation) DCA() bool         { return bit(v.ecx, 18) }
func (v VersionInformation) SSE41() bool       { return bit(v.ecx, 19) }
func (v VersionInformation) SSE42() bool       { return bit(v.ecx, 20) }
func (v VersionInformation) X2APIC() bool      { return bit(v.ecx, 21) }
func (v VersionInformation) MOVBE() bool       { return bit(v.ecx, 22) }
func (v VersionInformation) POPCNT() bool      { return bit(v.ecx, 23) }
func (v VersionInformation) TSCDeadline() bool { return bit(v.ecx, 24) }
func (v VersionInformation) AESNI() bool       { return bit(v.ecx, 25) }
func (v VersionInformation) XSAVE() bool       { return bit(v.ecx, 26) }
func (v VersionInformation) OSXSAVE() bool     { return bit(v.ecx, 27) }
func (v VersionInformation) AVX() bool         { return bit(v.ecx, 28) }
func (v VersionInformation) F16C() bool        { return bit(v.ecx, 29) }
func (v VersionInformation) RDRAND() bool      { return bit(v.ecx, 30) }

// 31 - unused

// edx flags

func (v VersionInformation) FPU() bool  { return bit(v.edx, 0) }
func (v VersionInformation) VME() bool  { return bit(v.edx, 1) }
func (v VersionInformation) DE() bool   { return bit(v.edx, 2) }
func (v VersionInformation) PSE() bool  { return bit(v.edx, 3) }
func (v VersionInformation) TSC() bool  { return bit(v.edx, 4) }
func (v VersionInformation) MSR() bool  { return bit(v.edx, 5) }
func (v VersionInformation) PAE() bool  { return bit(v.edx, 6) }
func (v VersionInformation) MCE() bool  { return bit(v.edx, 7) }
func (v VersionInformation) CX8() bool  { return bit(v.edx, 8) }
func (v VersionInformation) APIC() bool { return bit(v.edx, 9) }

// 10 - reserved

func (v VersionInformation) SEP() bool   { return bit(v.edx, 11) }
func (v VersionInformation) MTRR() bool  { return bit(v.edx, 12) }
func (v VersionInformation) PGE() bool   { return bit(v.edx, 13) }
func (v VersionInformation) MCA() bool   { return bit(v.edx, 14) }
func (v VersionInformation) CMOV() bool  { return bit(v.edx, 15) }
func (v VersionInformation) PAT() bool   { return bit(v.edx, 16) }
func (v VersionInformation) PSE36() bool { return bit(v.edx, 17) }
func (v VersionInformation) PSN() bool   { return bit(v.edx, 18) }
func (v VersionInformation) CLFSH() bool { return bit(v.edx, 19) }

// 20 - reserved

func (v VersionInformation) DS() bool   { return bit(v.edx, 21) }
func (v VersionInformation) ACPI() bool { return bit(v.edx, 22) }
func (v VersionInformation) MMX() bool  { return bit(v.edx, 23) }
func (v VersionInformation) FXSR() bool { return bit(v.edx, 24) }
func (v VersionInformation) SSE() bool  { return bit(v.edx, 25) }
func (v VersionInformation) SSE2() bool { return bit(v.edx, 26) }
func (v VersionInformation) SS() bool   { return bit(v.edx, 27) }
func (v VersionInformation) HTT() bool  { return bit(v.edx, 28) }
func (v VersionInformation) TM() bool   { return bit(v.edx, 29) }

// 30 - reserved

func (v VersionInformation) PBE() bool { return bit(v.edx, 31) }
