package cpuid

// Snapshot is the support-gated view of the CPU taken by New. It queries the
// maximum supported basic and extended leaves once, constructs a decoder for
// each leaf the CPU declares supported, and leaves the rest nil. Every flag
// accessor delegates to its decoder when present and reports false when the
// leaf is absent, so a Snapshot is safe to interrogate on any hardware.
//
// A Snapshot is immutable after construction and may be shared for reads
// across goroutines. It reflects the logical processor that executed the
// queries; pinning the goroutine to a core, where that matters, is the
// caller's responsibility.
type Snapshot struct {
	maxFunc    uint32
	maxExtFunc uint32

	// leaf 0 vendor bytes
	vendorEBX uint32
	vendorECX uint32
	vendorEDX uint32

	version   *VersionInformation
	thermal   *ThermalPowerManagementInformation
	extended  *StructuredExtendedInformation
	signature *ExtendedProcessorSignature
	brand     *BrandString
	cacheLine *CacheLine
	tsc       *TimeStampCounter
	address   *PhysicalAddressSize
}

// New takes a snapshot of the CPU running the current goroutine.
func New() *Snapshot {
	return NewFromReader(HardwareReader)
}

// NewFromReader takes a snapshot through the given reader. Hardware is only
// one reader; captured data (Data.Reader) and test doubles work the same way.
func NewFromReader(r LeafReader) *Snapshot {
	s := &Snapshot{}

	a, b, c, d := r(LeafBasicInformation, 0)
	s.maxFunc = a
	s.vendorEBX, s.vendorECX, s.vendorEDX = b, c, d

	a, _, _, _ = r(LeafExtendedFunction, 0)
	s.maxExtFunc = a

	// One gate per decoder: the leaf whose presence the CPU must declare,
	// which maximum it is compared against, and the constructor to run.
	// A decoder never queries hardware unless its gate passes. The brand
	// string gate is its highest constituent leaf; leaf numbers are
	// contiguous and ascending, so 0x80000004 in range implies all three.
	for _, g := range []struct {
		leaf  uint32
		max   uint32
		build func(LeafReader)
	}{
		{LeafVersionInformation, s.maxFunc, func(r LeafReader) {
			v := newVersionInformation(r)
			s.version = &v
		}},
		{LeafThermalPowerManagement, s.maxFunc, func(r LeafReader) {
			t := newThermalPowerManagementInformation(r)
			s.thermal = &t
		}},
		{LeafStructuredExtended, s.maxFunc, func(r LeafReader) {
			e := newStructuredExtendedInformation(r)
			s.extended = &e
		}},
		{LeafExtendedProcessorSignature, s.maxExtFunc, func(r LeafReader) {
			e := newExtendedProcessorSignature(r)
			s.signature = &e
		}},
		{LeafBrandString3, s.maxExtFunc, func(r LeafReader) {
			b := newBrandString(r)
			s.brand = &b
		}},
		{LeafCacheLine, s.maxExtFunc, func(r LeafReader) {
			cl := newCacheLine(r)
			s.cacheLine = &cl
		}},
		{LeafTimeStampCounter, s.maxExtFunc, func(r LeafReader) {
			t := newTimeStampCounter(r)
			s.tsc = &t
		}},
		{LeafPhysicalAddressSize, s.maxExtFunc, func(r LeafReader) {
			p := newPhysicalAddressSize(r)
			s.address = &p
		}},
	} {
		if g.max >= g.leaf {
			g.build(r)
		}
	}

	return s
}

// flagOf is the delegate-or-default helper behind every Snapshot flag: a nil
// decoder means the leaf is unsupported and the flag reports false.
func flagOf[D any](d *D, test func(D) bool) bool {
	if d == nil {
		return false
	}
	return test(*d)
}

// MaxFunction returns the maximum basic leaf the CPU reports.
func (s *Snapshot) MaxFunction() uint32 { return s.maxFunc }

// MaxExtendedFunction returns the maximum extended leaf the CPU reports.
func (s *Snapshot) MaxExtendedFunction() uint32 { return s.maxExtFunc }

// VendorID returns the 12-byte vendor identification string from leaf 0,
// for example "GenuineIntel" or "AuthenticAMD".
func (s *Snapshot) VendorID() string {
	return vendorString(s.vendorEBX, s.vendorECX, s.vendorEDX)
}

// VendorName maps the vendor identification string to a short vendor name.
func (s *Snapshot) VendorName() string {
	switch s.VendorID() {
	case "GenuineIntel":
		return "Intel"
	case "AuthenticAMD":
		return "AMD"
	default:
		return "Unknown"
	}
}

// FamilyID returns the display family, or 0 when the version information
// leaf is unsupported. Callers that must distinguish the absent leaf use
// VersionInformation.
func (s *Snapshot) FamilyID() uint32 {
	if s.version == nil {
		return 0
	}
	return s.version.FamilyID()
}

// ModelID returns the display model, or 0 when the version information leaf
// is unsupported.
func (s *Snapshot) ModelID() uint32 {
	if s.version == nil {
		return 0
	}
	return s.version.ModelID()
}

// Stepping returns the stepping id, or 0 when the version information leaf
// is unsupported.
func (s *Snapshot) Stepping() uint32 {
	if s.version == nil {
		return 0
	}
	return s.version.Stepping()
}

// BrandString returns the processor marketing name. The 48-byte brand
// string leaves are preferred; CPUs without them fall back to the brand
// index table of leaf 1. The second return is false when neither source
// names the processor.
func (s *Snapshot) BrandString() (string, bool) {
	if s.brand != nil {
		return s.brand.String(), true
	}
	if s.version != nil {
		return s.version.BrandString()
	}
	return "", false
}

// VersionInformation returns the leaf 1 decoder when the CPU supports it.
func (s *Snapshot) VersionInformation() (VersionInformation, bool) {
	if s.version == nil {
		return VersionInformation{}, false
	}
	return *s.version, true
}

// ThermalPowerManagement returns the leaf 6 decoder when the CPU supports it.
func (s *Snapshot) ThermalPowerManagement() (ThermalPowerManagementInformation, bool) {
	if s.thermal == nil {
		return ThermalPowerManagementInformation{}, false
	}
	return *s.thermal, true
}

// StructuredExtended returns the leaf 7 decoder when the CPU supports it.
func (s *Snapshot) StructuredExtended() (StructuredExtendedInformation, bool) {
	if s.extended == nil {
		return StructuredExtendedInformation{}, false
	}
	return *s.extended, true
}

// ExtendedProcessorSignature returns the leaf 0x80000001 decoder when the
// CPU supports it.
func (s *Snapshot) ExtendedProcessorSignature() (ExtendedProcessorSignature, bool) {
	if s.signature == nil {
		return ExtendedProcessorSignature{}, false
	}
	return *s.signature, true
}

// CacheLine returns the leaf 0x80000006 decoder when the CPU supports it.
func (s *Snapshot) CacheLine() (CacheLine, bool) {
	if s.cacheLine == nil {
		return CacheLine{}, false
	}
	return *s.cacheLine, true
}

// TimeStampCounter returns the leaf 0x80000007 decoder when the CPU
// supports it.
func (s *Snapshot) TimeStampCounter() (TimeStampCounter, bool) {
	if s.tsc == nil {
		return TimeStampCounter{}, false
	}
	return *s.tsc, true
}

// PhysicalAddressSize returns the leaf 0x80000008 decoder when the CPU
// supports it. Address widths have no meaningful default, so there is no
// delegated accessor; callers check presence here.
func (s *Snapshot) PhysicalAddressSize() (PhysicalAddressSize, bool) {
	if s.address == nil {
		return PhysicalAddressSize{}, false
	}
	return *s.address, true
}

// Version information flags.

func (s *Snapshot) SSE3() bool       { return flagOf(s.version, VersionInformation.SSE3) }
func (s *Snapshot) PCLMULQDQ() bool  { return flagOf(s.version, VersionInformation.PCLMULQDQ) }
func (s *Snapshot) DTES64() bool     { return flagOf(s.version, VersionInformation.DTES64) }
func (s *Snapshot) MONITOR() bool    { return flagOf(s.version, VersionInformation.MONITOR) }
func (s *Snapshot) DSCPL() bool      { return flagOf(s.version, VersionInformation.DSCPL) }
func (s *Snapshot) VMX() bool        { return flagOf(s.version, VersionInformation.VMX) }
func (s *Snapshot) SMX() bool        { return flagOf(s.version, VersionInformation.SMX) }
func (s *Snapshot) EIST() bool       { return flagOf(s.version, VersionInformation.EIST) }
func (s *Snapshot) TM2() bool        { return flagOf(s.version, VersionInformation.TM2) }
func (s *Snapshot) SSSE3() bool      { return flagOf(s.version, VersionInformation.SSSE3) }
func (s *Snapshot) CNXTID() bool     { return flagOf(s.version, VersionInformation.CNXTID) }
func (s *Snapshot) SDBG() bool       { return flagOf(s.version, VersionInformation.SDBG) }
func (s *Snapshot) FMA() bool        { return flagOf(s.version, VersionInformation.FMA) }
func (s *Snapshot) CMPXCHG16B() bool { return flagOf(s.version, VersionInformation.CMPXCHG16B) }
func (s *Snapshot) XTPRUpdateControl() bool {
	return flagOf(s.version, VersionInformation.XTPRUpdateControl)
}
func (s *Snapshot) PDCM() bool        { return flagOf(s.version, VersionInformation.PDCM) }
func (s *Snapshot) PCID() bool        { return flagOf(s.version, VersionInformation.PCID) }
func (s *Snapshot) DCA() bool         { return flagOf(s.version, VersionInformation.DCA) }
func (s *Snapshot) SSE41() bool       { return flagOf(s.version, VersionInformation.SSE41) }
func (s *Snapshot) SSE42() bool       { return flagOf(s.version, VersionInformation.SSE42) }
func (s *Snapshot) X2APIC() bool      { return flagOf(s.version, VersionInformation.X2APIC) }
func (s *Snapshot) MOVBE() bool       { return flagOf(s.version, VersionInformation.MOVBE) }
func (s *Snapshot) POPCNT() bool      { return flagOf(s.version, VersionInformation.POPCNT) }
func (s *Snapshot) TSCDeadline() bool { return flagOf(s.version, VersionInformation.TSCDeadline) }
func (s *Snapshot) AESNI() bool       { return flagOf(s.version, VersionInformation.AESNI) }
func (s *Snapshot) XSAVE() bool       { return flagOf(s.version, VersionInformation.XSAVE) }
func (s *Snapshot) OSXSAVE() bool     { return flagOf(s.version, VersionInformation.OSXSAVE) }
func (s *Snapshot) AVX() bool         { return flagOf(s.version, VersionInformation.AVX) }
func (s *Snapshot) F16C() bool        { return flagOf(s.version, VersionInformation.F16C) }
func (s *Snapshot) RDRAND() bool      { return flagOf(s.version, VersionInformation.RDRAND) }
func (s *Snapshot) FPU() bool         { return flagOf(s.version, VersionInformation.FPU) }
func (s *Snapshot) VME() bool         { return flagOf(s.version, VersionInformation.VME) }
func (s *Snapshot) DE() bool          { return flagOf(s.version, VersionInformation.DE) }
func (s *Snapshot) PSE() bool         { return flagOf(s.version, VersionInformation.PSE) }
func (s *Snapshot) TSC() bool         { return flagOf(s.version, VersionInformation.TSC) }
func (s *Snapshot) MSR() bool         { return flagOf(s.version, VersionInformation.MSR) }
func (s *Snapshot) PAE() bool         { return flagOf(s.version, VersionInformation.PAE) }
func (s *Snapshot) MCE() bool         { return flagOf(s.version, VersionInformation.MCE) }
func (s *Snapshot) CX8() bool         { return flagOf(s.version, VersionInformation.CX8) }
func (s *Snapshot) APIC() bool        { return flagOf(s.version, VersionInformation.APIC) }
func (s *Snapshot) SEP() bool         { return flagOf(s.version, VersionInformation.SEP) }
func (s *Snapshot) MTRR() bool        { return flagOf(s.version, VersionInformation.MTRR) }
func (s *Snapshot) PGE() bool         { return flagOf(s.version, VersionInformation.PGE) }
func (s *Snapshot) MCA() bool         { return flagOf(s.version, VersionInformation.MCA) }
func (s *Snapshot) CMOV() bool        { return flagOf(s.version, VersionInformation.CMOV) }
func (s *Snapshot) PAT() bool         { return flagOf(s.version, VersionInformation.PAT) }
func (s *Snapshot) PSE36() bool       { return flagOf(s.version, VersionInformation.PSE36) }
func (s *Snapshot) PSN() bool         { return flagOf(s.version, VersionInformation.PSN) }
func (s *Snapshot) CLFSH() bool       { return flagOf(s.version, VersionInformation.CLFSH) }
func (s *Snapshot) DS() bool          { return flagOf(s.version, VersionInformation.DS) }
func (s *Snapshot) ACPI() bool        { return flagOf(s.version, VersionInformation.ACPI) }
func (s *Snapshot) MMX() bool         { return flagOf(s.version, VersionInformation.MMX) }
func (s *Snapshot) FXSR() bool        { return flagOf(s.version, VersionInformation.FXSR) }
func (s *Snapshot) SSE() bool         { return flagOf(s.version, VersionInformation.SSE) }
func (s *Snapshot) SSE2() bool        { return flagOf(s.version, VersionInformation.SSE2) }
func (s *Snapshot) SS() bool          { return flagOf(s.version, VersionInformation.SS) }
func (s *Snapshot) HTT() bool         { return flagOf(s.version, VersionInformation.HTT) }
func (s *Snapshot) TM() bool          { return flagOf(s.version, VersionInformation.TM) }
func (s *Snapshot) PBE() bool         { return flagOf(s.version, VersionInformation.PBE) }

// Thermal and power management flags.

func (s *Snapshot) DigitalTemperatureSensor() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.DigitalTemperatureSensor)
}
func (s *Snapshot) IntelTurboBoost() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.IntelTurboBoost)
}
func (s *Snapshot) ARAT() bool { return flagOf(s.thermal, ThermalPowerManagementInformation.ARAT) }
func (s *Snapshot) PLN() bool  { return flagOf(s.thermal, ThermalPowerManagementInformation.PLN) }
func (s *Snapshot) ECMD() bool { return flagOf(s.thermal, ThermalPowerManagementInformation.ECMD) }
func (s *Snapshot) PTM() bool  { return flagOf(s.thermal, ThermalPowerManagementInformation.PTM) }
func (s *Snapshot) HWP() bool  { return flagOf(s.thermal, ThermalPowerManagementInformation.HWP) }
func (s *Snapshot) HWPNotification() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.HWPNotification)
}
func (s *Snapshot) HWPActivityWindow() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.HWPActivityWindow)
}
func (s *Snapshot) HWPEnergyPerformancePreference() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.HWPEnergyPerformancePreference)
}
func (s *Snapshot) HDC() bool { return flagOf(s.thermal, ThermalPowerManagementInformation.HDC) }
func (s *Snapshot) HardwareCoordinationFeedback() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.HardwareCoordinationFeedback)
}
func (s *Snapshot) PerformanceEnergyBias() bool {
	return flagOf(s.thermal, ThermalPowerManagementInformation.PerformanceEnergyBias)
}

// Structured extended flags.

func (s *Snapshot) FSGSBASE() bool { return flagOf(s.extended, StructuredExtendedInformation.FSGSBASE) }
func (s *Snapshot) IA32TSCAdjustMSR() bool {
	return flagOf(s.extended, StructuredExtendedInformation.IA32TSCAdjustMSR)
}
func (s *Snapshot) BMI1() bool { return flagOf(s.extended, StructuredExtendedInformation.BMI1) }
func (s *Snapshot) HLE() bool  { return flagOf(s.extended, StructuredExtendedInformation.HLE) }
func (s *Snapshot) AVX2() bool { return flagOf(s.extended, StructuredExtendedInformation.AVX2) }
func (s *Snapshot) SMEP() bool { return flagOf(s.extended, StructuredExtendedInformation.SMEP) }
func (s *Snapshot) BMI2() bool { return flagOf(s.extended, StructuredExtendedInformation.BMI2) }
func (s *Snapshot) EnhancedRepMovsbStosb() bool {
	return flagOf(s.extended, StructuredExtendedInformation.EnhancedRepMovsbStosb)
}
func (s *Snapshot) INVPCID() bool { return flagOf(s.extended, StructuredExtendedInformation.INVPCID) }
func (s *Snapshot) RTM() bool     { return flagOf(s.extended, StructuredExtendedInformation.RTM) }
func (s *Snapshot) PQM() bool     { return flagOf(s.extended, StructuredExtendedInformation.PQM) }
func (s *Snapshot) DeprecatesFPUCSDS() bool {
	return flagOf(s.extended, StructuredExtendedInformation.DeprecatesFPUCSDS)
}
func (s *Snapshot) PQE() bool    { return flagOf(s.extended, StructuredExtendedInformation.PQE) }
func (s *Snapshot) RDSEED() bool { return flagOf(s.extended, StructuredExtendedInformation.RDSEED) }
func (s *Snapshot) ADX() bool    { return flagOf(s.extended, StructuredExtendedInformation.ADX) }
func (s *Snapshot) SMAP() bool   { return flagOf(s.extended, StructuredExtendedInformation.SMAP) }
func (s *Snapshot) IntelProcessorTrace() bool {
	return flagOf(s.extended, StructuredExtendedInformation.IntelProcessorTrace)
}
func (s *Snapshot) PREFETCHWT1() bool {
	return flagOf(s.extended, StructuredExtendedInformation.PREFETCHWT1)
}

// Extended processor signature flags.

func (s *Snapshot) LAHFSAHFIn64Bit() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.LAHFSAHFIn64Bit)
}
func (s *Snapshot) LZCNT() bool { return flagOf(s.signature, ExtendedProcessorSignature.LZCNT) }
func (s *Snapshot) PREFETCHW() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.PREFETCHW)
}
func (s *Snapshot) SyscallSysretIn64Bit() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.SyscallSysretIn64Bit)
}
func (s *Snapshot) ExecuteDisable() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.ExecuteDisable)
}
func (s *Snapshot) GigabytePages() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.GigabytePages)
}
func (s *Snapshot) RDTSCPAndIA32TSCAux() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.RDTSCPAndIA32TSCAux)
}
func (s *Snapshot) Intel64BitArchitecture() bool {
	return flagOf(s.signature, ExtendedProcessorSignature.Intel64BitArchitecture)
}

// Time stamp counter flags.

func (s *Snapshot) InvariantTSC() bool { return flagOf(s.tsc, TimeStampCounter.InvariantTSC) }
