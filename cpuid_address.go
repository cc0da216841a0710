package cpuid

// PhysicalAddressSize decodes leaf 0x80000008: the physical and linear
// address widths of the processor.
type PhysicalAddressSize struct {
	eax uint32
}

func newPhysicalAddressSize(r LeafReader) PhysicalAddressSize {
	a, _, _, _ := r(LeafPhysicalAddressSize, 0)
	return PhysicalAddressSize{eax: a}
}

// PhysicalAddressBits returns the number of physical address bits, eax[0:7].
func (p PhysicalAddressSize) PhysicalAddressBits() uint32 {
	return bitsOf(p.eax, 0, 7)
}

// LinearAddressBits returns the number of linear address bits, eax[8:15].
func (p PhysicalAddressSize) LinearAddressBits() uint32 {
	return bitsOf(p.eax, 8, 15)
}
