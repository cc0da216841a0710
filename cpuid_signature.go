package cpuid

// ExtendedProcessorSignature decodes leaf 0x80000001. Only ecx and edx carry
// defined feature bits on Intel.
type ExtendedProcessorSignature struct {
	ecx uint32
	edx uint32
}

func newExtendedProcessorSignature(r LeafReader) ExtendedProcessorSignature {
	_, _, c, d := r(LeafExtendedProcessorSignature, 0)
	return ExtendedProcessorSignature{ecx: c, edx: d}
}

func (e ExtendedProcessorSignature) LAHFSAHFIn64Bit() bool { return bit(e.ecx, 0) }

// 1-4 - reserved

func (e ExtendedProcessorSignature) LZCNT() bool { return bit(e.ecx, 5) }

// 6-7 - reserved

func (e ExtendedProcessorSignature) PREFETCHW() bool { return bit(e.ecx, 8) }

// edx: 0-10 - reserved

func (e ExtendedProcessorSignature) SyscallSysretIn64Bit() bool { return bit(e.edx, 11) }

// 12-19 - reserved

func (e ExtendedProcessorSignature) ExecuteDisable() bool { return bit(e.edx, 20) }

// 21-25 - reserved

func (e ExtendedProcessorSignature) GigabytePages() bool       { return bit(e.edx, 26) }
func (e ExtendedProcessorSignature) RDTSCPAndIA32TSCAux() bool { return bit(e.edx, 27) }

// 28 - reserved

func (e ExtendedProcessorSignature) Intel64BitArchitecture() bool { return bit(e.edx, 29) }
