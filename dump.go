package cpuid

import (
	"fmt"
	"io"
	"strings"
)

// dumpField is one named, already-decoded value in a diagnostic dump.
type dumpField struct {
	name  string
	value any
}

// renderFields formats a leaf's decoded fields as an indented block. Field
// order is stable per leaf but not guaranteed stable across versions.
func renderFields(leaf string, fields []dumpField) string {
	var b strings.Builder
	b.WriteString(leaf)
	b.WriteString(":\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s: %v\n", f.name, f.value)
	}
	return b.String()
}

func (v VersionInformation) fields() []dumpField {
	brand, _ := v.BrandString()
	return []dumpField{
		{"family_id", v.FamilyID()},
		{"model_id", v.ModelID()},
		{"stepping", v.Stepping()},
		{"brand_string", brand},
		{"sse3", v.SSE3()},
		{"pclmulqdq", v.PCLMULQDQ()},
		{"dtes64", v.DTES64()},
		{"monitor", v.MONITOR()},
		{"ds_cpl", v.DSCPL()},
		{"vmx", v.VMX()},
		{"smx", v.SMX()},
		{"eist", v.EIST()},
		{"tm2", v.TM2()},
		{"ssse3", v.SSSE3()},
		{"cnxt_id", v.CNXTID()},
		{"sdbg", v.SDBG()},
		{"fma", v.FMA()},
		{"cmpxchg16b", v.CMPXCHG16B()},
		{"xtpr_update_control", v.XTPRUpdateControl()},
		{"pdcm", v.PDCM()},
		{"pcid", v.PCID()},
		{"dca", v.DCA()},
		{"sse4_1", v.SSE41()},
		{"sse4_2", v.SSE42()},
		{"x2apic", v.X2APIC()},
		{"movbe", v.MOVBE()},
		{"popcnt", v.POPCNT()},
		{"tsc_deadline", v.TSCDeadline()},
		{"aesni", v.AESNI()},
		{"xsave", v.XSAVE()},
		{"osxsave", v.OSXSAVE()},
		{"avx", v.AVX()},
		{"f16c", v.F16C()},
		{"rdrand", v.RDRAND()},
		{"fpu", v.FPU()},
		{"vme", v.VME()},
		{"de", v.DE()},
		{"pse", v.PSE()},
		{"tsc", v.TSC()},
		{"msr", v.MSR()},
		{"pae", v.PAE()},
		{"mce", v.MCE()},
		{"cx8", v.CX8()},
		{"apic", v.APIC()},
		{"sep", v.SEP()},
		{"mtrr", v.MTRR()},
		{"pge", v.PGE()},
		{"mca", v.MCA()},
		{"cmov", v.CMOV()},
		{"pat", v.PAT()},
		{"pse_36", v.PSE36()},
		{"psn", v.PSN()},
		{"clfsh", v.CLFSH()},
		{"ds", v.DS()},
		{"acpi", v.ACPI()},
		{"mmx", v.MMX()},
		{"fxsr", v.FXSR()},
		{"sse", v.SSE()},
		{"sse2", v.SSE2()},
		{"ss", v.SS()},
		{"htt", v.HTT()},
		{"tm", v.TM()},
		{"pbe", v.PBE()},
	}
}

func (v VersionInformation) String() string {
	return renderFields("VersionInformation", v.fields())
}

func (t ThermalPowerManagementInformation) fields() []dumpField {
	return []dumpField{
		{"digital_temperature_sensor", t.DigitalTemperatureSensor()},
		{"intel_turbo_boost", t.IntelTurboBoost()},
		{"arat", t.ARAT()},
		{"pln", t.PLN()},
		{"ecmd", t.ECMD()},
		{"ptm", t.PTM()},
		{"hwp", t.HWP()},
		{"hwp_notification", t.HWPNotification()},
		{"hwp_activity_window", t.HWPActivityWindow()},
		{"hwp_energy_performance_preference", t.HWPEnergyPerformancePreference()},
		{"hdc", t.HDC()},
		{"number_of_interrupt_thresholds", t.NumberOfInterruptThresholds()},
		{"hardware_coordination_feedback", t.HardwareCoordinationFeedback()},
		{"performance_energy_bias", t.PerformanceEnergyBias()},
	}
}

func (t ThermalPowerManagementInformation) String() string {
	return renderFields("ThermalPowerManagementInformation", t.fields())
}

func (s StructuredExtendedInformation) fields() []dumpField {
	return []dumpField{
		{"fsgsbase", s.FSGSBASE()},
		{"ia32_tsc_adjust_msr", s.IA32TSCAdjustMSR()},
		{"bmi1", s.BMI1()},
		{"hle", s.HLE()},
		{"avx2", s.AVX2()},
		{"smep", s.SMEP()},
		{"bmi2", s.BMI2()},
		{"enhanced_rep_movsb_stosb", s.EnhancedRepMovsbStosb()},
		{"invpcid", s.INVPCID()},
		{"rtm", s.RTM()},
		{"pqm", s.PQM()},
		{"deprecates_fpu_cs_ds", s.DeprecatesFPUCSDS()},
		{"pqe", s.PQE()},
		{"rdseed", s.RDSEED()},
		{"adx", s.ADX()},
		{"smap", s.SMAP()},
		{"intel_processor_trace", s.IntelProcessorTrace()},
		{"prefetchwt1", s.PREFETCHWT1()},
	}
}

func (s StructuredExtendedInformation) String() string {
	return renderFields("StructuredExtendedInformation", s.fields())
}

func (e ExtendedProcessorSignature) fields() []dumpField {
	return []dumpField{
		{"lahf_sahf_in_64_bit", e.LAHFSAHFIn64Bit()},
		{"lzcnt", e.LZCNT()},
		{"prefetchw", e.PREFETCHW()},
		{"syscall_sysret_in_64_bit", e.SyscallSysretIn64Bit()},
		{"execute_disable", e.ExecuteDisable()},
		{"gigabyte_pages", e.GigabytePages()},
		{"rdtscp_and_ia32_tsc_aux", e.RDTSCPAndIA32TSCAux()},
		{"intel_64_bit_architecture", e.Intel64BitArchitecture()},
	}
}

func (e ExtendedProcessorSignature) String() string {
	return renderFields("ExtendedProcessorSignature", e.fields())
}

func (cl CacheLine) fields() []dumpField {
	return []dumpField{
		{"cache_line_size", cl.CacheLineSize()},
		{"l2_associativity", cl.L2Associativity()},
		{"cache_size", cl.CacheSize()},
	}
}

func (cl CacheLine) String() string {
	return renderFields("CacheLine", cl.fields())
}

func (t TimeStampCounter) fields() []dumpField {
	return []dumpField{
		{"invariant_tsc", t.InvariantTSC()},
	}
}

func (t TimeStampCounter) String() string {
	return renderFields("TimeStampCounter", t.fields())
}

func (p PhysicalAddressSize) fields() []dumpField {
	return []dumpField{
		{"physical_address_bits", p.PhysicalAddressBits()},
		{"linear_address_bits", p.LinearAddressBits()},
	}
}

func (p PhysicalAddressSize) String() string {
	return renderFields("PhysicalAddressSize", p.fields())
}

// Dump writes a human-readable rendering of every decoded leaf to w,
// grouped by leaf name. Unsupported leaves are listed as such rather than
// omitted, so a dump always has the same shape.
func (s *Snapshot) Dump(w io.Writer) {
	fmt.Fprintf(w, "BasicInformation:\n")
	fmt.Fprintf(w, "  max_function: 0x%08x\n", s.maxFunc)
	fmt.Fprintf(w, "  max_extended_function: 0x%08x\n", s.maxExtFunc)
	fmt.Fprintf(w, "  vendor_id: %s\n", s.VendorID())

	dumpLeaf(w, "VersionInformation", s.version)
	dumpLeaf(w, "ThermalPowerManagementInformation", s.thermal)
	dumpLeaf(w, "StructuredExtendedInformation", s.extended)
	dumpLeaf(w, "ExtendedProcessorSignature", s.signature)

	if s.brand != nil {
		fmt.Fprintf(w, "BrandString:\n  brand_string: %s\n", s.brand.String())
	} else {
		fmt.Fprintf(w, "BrandString: not supported\n")
	}

	dumpLeaf(w, "CacheLine", s.cacheLine)
	dumpLeaf(w, "TimeStampCounter", s.tsc)
	dumpLeaf(w, "PhysicalAddressSize", s.address)
}

func dumpLeaf[D fmt.Stringer](w io.Writer, name string, d *D) {
	if d == nil {
		fmt.Fprintf(w, "%s: not supported\n", name)
		return
	}
	io.WriteString(w, (*d).String())
}
