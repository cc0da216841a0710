package cpuid

// TimeStampCounter decodes leaf 0x80000007. Only edx carries a defined bit.
type TimeStampCounter struct {
	edx uint32
}

func newTimeStampCounter(r LeafReader) TimeStampCounter {
	_, _, _, d := r(LeafTimeStampCounter, 0)
	return TimeStampCounter{edx: d}
}

// 0-7 - reserved

// InvariantTSC reports whether the time stamp counter runs at a constant
// rate in all ACPI P-, C- and T-states.
func (t TimeStampCounter) InvariantTSC() bool { return bit(t.edx, 8) }

// 9-31 - reserved
