package cpuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpFullyFeatured(t *testing.T) {
	s := NewFromReader(genuineIntel().read)

	var b strings.Builder
	s.Dump(&b)
	out := b.String()

	assert.Contains(t, out, "BasicInformation:")
	assert.Contains(t, out, "vendor_id: GenuineIntel")
	assert.Contains(t, out, "VersionInformation:")
	assert.Contains(t, out, "aesni: true")
	assert.Contains(t, out, "avx: false")
	assert.Contains(t, out, "avx2: true")
	assert.Contains(t, out, "brand_string: Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz")
	assert.Contains(t, out, "l2_associativity: eight-way")
	assert.Contains(t, out, "invariant_tsc: true")
	assert.Contains(t, out, "physical_address_bits: 39")
}

func TestDumpMarksUnsupportedLeaves(t *testing.T) {
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation:   {LeafVersionInformation, vendorGenu, vendorNtel, vendorIneI},
		LeafVersionInformation: {0x000906EA, 0, 0, 0},
	}}
	s := NewFromReader(r.read)

	var b strings.Builder
	s.Dump(&b)
	out := b.String()

	assert.Contains(t, out, "VersionInformation:")
	assert.Contains(t, out, "ThermalPowerManagementInformation: not supported")
	assert.Contains(t, out, "BrandString: not supported")
	assert.Contains(t, out, "PhysicalAddressSize: not supported")
}

func TestDumpStableOrdering(t *testing.T) {
	s := NewFromReader(genuineIntel().read)

	var first, second strings.Builder
	s.Dump(&first)
	s.Dump(&second)
	assert.Equal(t, first.String(), second.String())

	// Field order within a leaf is fixed.
	out := first.String()
	assert.Less(t, strings.Index(out, "family_id:"), strings.Index(out, "stepping:"))
	assert.Less(t, strings.Index(out, "sse3:"), strings.Index(out, "rdrand:"))
}
