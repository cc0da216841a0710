package cpuid

// Flag is one named capability together with its support state in a
// Snapshot. Name is the vendor mnemonic, Leaf the name of the leaf the bit
// lives in.
type Flag struct {
	Leaf      string
	Name      string
	Supported bool
}

// snapshotFlags enumerates every delegated flag accessor in a fixed order.
var snapshotFlags = []struct {
	leaf string
	name string
	test func(*Snapshot) bool
}{
	{"VersionInformation", "sse3", (*Snapshot).SSE3},
	{"VersionInformation", "pclmulqdq", (*Snapshot).PCLMULQDQ},
	{"VersionInformation", "dtes64", (*Snapshot).DTES64},
	{"VersionInformation", "monitor", (*Snapshot).MONITOR},
	{"VersionInformation", "ds_cpl", (*Snapshot).DSCPL},
	{"VersionInformation", "vmx", (*Snapshot).VMX},
	{"VersionInformation", "smx", (*Snapshot).SMX},
	{"VersionInformation", "eist", (*Snapshot).EIST},
	{"VersionInformation", "tm2", (*Snapshot).TM2},
	{"VersionInformation", "ssse3", (*Snapshot).SSSE3},
	{"VersionInformation", "cnxt_id", (*Snapshot).CNXTID},
	{"VersionInformation", "sdbg", (*Snapshot).SDBG},
	{"VersionInformation", "fma", (*Snapshot).FMA},
	{"VersionInformation", "cmpxchg16b", (*Snapshot).CMPXCHG16B},
	{"VersionInformation", "xtpr_update_control", (*Snapshot).XTPRUpdateControl},
	{"VersionInformation", "pdcm", (*Snapshot).PDCM},
	{"VersionInformation", "pcid", (*Snapshot).PCID},
	{"VersionInformation", "dca", (*Snapshot).DCA},
	{"VersionInformation", "sse4_1", (*Snapshot).SSE41},
	{"VersionInformation", "sse4_2", (*Snapshot).SSE42},
	{"VersionInformation", "x2apic", (*Snapshot).X2APIC},
	{"VersionInformation", "movbe", (*Snapshot).MOVBE},
	{"VersionInformation", "popcnt", (*Snapshot).POPCNT},
	{"VersionInformation", "tsc_deadline", (*Snapshot).TSCDeadline},
	{"VersionInformation", "aesni", (*Snapshot).AESNI},
	{"VersionInformation", "xsave", (*Snapshot).XSAVE},
	{"VersionInformation", "osxsave", (*Snapshot).OSXSAVE},
	{"VersionInformation", "avx", (*Snapshot).AVX},
	{"VersionInformation", "f16c", (*Snapshot).F16C},
	{"VersionInformation", "rdrand", (*Snapshot).RDRAND},
	{"VersionInformation", "fpu", (*Snapshot).FPU},
	{"VersionInformation", "vme", (*Snapshot).VME},
	{"VersionInformation", "de", (*Snapshot).DE},
	{"VersionInformation", "pse", (*Snapshot).PSE},
	{"VersionInformation", "tsc", (*Snapshot).TSC},
	{"VersionInformation", "msr", (*Snapshot).MSR},
	{"VersionInformation", "pae", (*Snapshot).PAE},
	{"VersionInformation", "mce", (*Snapshot).MCE},
	{"VersionInformation", "cx8", (*Snapshot).CX8},
	{"VersionInformation", "apic", (*Snapshot).APIC},
	{"VersionInformation", "sep", (*Snapshot).SEP},
	{"VersionInformation", "mtrr", (*Snapshot).MTRR},
	{"VersionInformation", "pge", (*Snapshot).PGE},
	{"VersionInformation", "mca", (*Snapshot).MCA},
	{"VersionInformation", "cmov", (*Snapshot).CMOV},
	{"VersionInformation", "pat", (*Snapshot).PAT},
	{"VersionInformation", "pse_36", (*Snapshot).PSE36},
	{"VersionInformation", "psn", (*Snapshot).PSN},
	{"VersionInformation", "clfsh", (*Snapshot).CLFSH},
	{"VersionInformation", "ds", (*Snapshot).DS},
	{"VersionInformation", "acpi", (*Snapshot).ACPI},
	{"VersionInformation", "mmx", (*Snapshot).MMX},
	{"VersionInformation", "fxsr", (*Snapshot).FXSR},
	{"VersionInformation", "sse", (*Snapshot).SSE},
	{"VersionInformation", "sse2", (*Snapshot).SSE2},
	{"VersionInformation", "ss", (*Snapshot).SS},
	{"VersionInformation", "htt", (*Snapshot).HTT},
	{"VersionInformation", "tm", (*Snapshot).TM},
	{"VersionInformation", "pbe", (*Snapshot).PBE},

	{"ThermalPowerManagementInformation", "digital_temperature_sensor", (*Snapshot).DigitalTemperatureSensor},
	{"ThermalPowerManagementInformation", "intel_turbo_boost", (*Snapshot).IntelTurboBoost},
	{"ThermalPowerManagementInformation", "arat", (*Snapshot).ARAT},
	{"ThermalPowerManagementInformation", "pln", (*Snapshot).PLN},
	{"ThermalPowerManagementInformation", "ecmd", (*Snapshot).ECMD},
	{"ThermalPowerManagementInformation", "ptm", (*Snapshot).PTM},
	{"ThermalPowerManagementInformation", "hwp", (*Snapshot).HWP},
	{"ThermalPowerManagementInformation", "hwp_notification", (*Snapshot).HWPNotification},
	{"ThermalPowerManagementInformation", "hwp_activity_window", (*Snapshot).HWPActivityWindow},
	{"ThermalPowerManagementInformation", "hwp_energy_performance_preference", (*Snapshot).HWPEnergyPerformancePreference},
	{"ThermalPowerManagementInformation", "hdc", (*Snapshot).HDC},
	{"ThermalPowerManagementInformation", "hardware_coordination_feedback", (*Snapshot).HardwareCoordinationFeedback},
	{"ThermalPowerManagementInformation", "performance_energy_bias", (*Snapshot).PerformanceEnergyBias},

	{"StructuredExtendedInformation", "fsgsbase", (*Snapshot).FSGSBASE},
	{"StructuredExtendedInformation", "ia32_tsc_adjust_msr", (*Snapshot).IA32TSCAdjustMSR},
	{"StructuredExtendedInformation", "bmi1", (*Snapshot).BMI1},
	{"StructuredExtendedInformation", "hle", (*Snapshot).HLE},
	{"StructuredExtendedInformation", "avx2", (*Snapshot).AVX2},
	{"StructuredExtendedInformation", "smep", (*Snapshot).SMEP},
	{"StructuredExtendedInformation", "bmi2", (*Snapshot).BMI2},
	{"StructuredExtendedInformation", "enhanced_rep_movsb_stosb", (*Snapshot).EnhancedRepMovsbStosb},
	{"StructuredExtendedInformation", "invpcid", (*Snapshot).INVPCID},
	{"StructuredExtendedInformation", "rtm", (*Snapshot).RTM},
	{"StructuredExtendedInformation", "pqm", (*Snapshot).PQM},
	{"StructuredExtendedInformation", "deprecates_fpu_cs_ds", (*Snapshot).DeprecatesFPUCSDS},
	{"StructuredExtendedInformation", "pqe", (*Snapshot).PQE},
	{"StructuredExtendedInformation", "rdseed", (*Snapshot).RDSEED},
	{"StructuredExtendedInformation", "adx", (*Snapshot).ADX},
	{"StructuredExtendedInformation", "smap", (*Snapshot).SMAP},
	{"StructuredExtendedInformation", "intel_processor_trace", (*Snapshot).IntelProcessorTrace},
	{"StructuredExtendedInformation", "prefetchwt1", (*Snapshot).PREFETCHWT1},

	{"ExtendedProcessorSignature", "lahf_sahf_in_64_bit", (*Snapshot).LAHFSAHFIn64Bit},
	{"ExtendedProcessorSignature", "lzcnt", (*Snapshot).LZCNT},
	{"ExtendedProcessorSignature", "prefetchw", (*Snapshot).PREFETCHW},
	{"ExtendedProcessorSignature", "syscall_sysret_in_64_bit", (*Snapshot).SyscallSysretIn64Bit},
	{"ExtendedProcessorSignature", "execute_disable", (*Snapshot).ExecuteDisable},
	{"ExtendedProcessorSignature", "gigabyte_pages", (*Snapshot).GigabytePages},
	{"ExtendedProcessorSignature", "rdtscp_and_ia32_tsc_aux", (*Snapshot).RDTSCPAndIA32TSCAux},
	{"ExtendedProcessorSignature", "intel_64_bit_architecture", (*Snapshot).Intel64BitArchitecture},

	{"TimeStampCounter", "invariant_tsc", (*Snapshot).InvariantTSC},
}

// Flags returns every capability this package decodes, in a fixed order,
// with its support state in this snapshot. Flags whose leaf is unsupported
// report false, the same as their accessor methods.
func (s *Snapshot) Flags() []Flag {
	flags := make([]Flag, 0, len(snapshotFlags))
	for _, f := range snapshotFlags {
		flags = append(flags, Flag{Leaf: f.leaf, Name: f.name, Supported: f.test(s)})
	}
	return flags
}
