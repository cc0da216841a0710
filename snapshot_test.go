package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Vendor identification registers of leaf 0 on a genuine Intel part:
// ebx "Genu", edx "ineI", ecx "ntel", little-endian bytes.
const (
	vendorGenu = 0x756e6547
	vendorNtel = 0x6c65746e
	vendorIneI = 0x49656e69
)

// scriptedReader is a LeafReader double returning canned registers and
// recording every leaf it is asked for. Leaves missing from the script read
// as zero, which is also how it reports the maximum extended leaf when leaf
// 0x80000000 is not scripted.
type scriptedReader struct {
	regs  map[uint32][4]uint32
	calls []uint32
}

func (s *scriptedReader) read(leaf, subleaf uint32) (uint32, uint32, uint32, uint32) {
	s.calls = append(s.calls, leaf)
	r := s.regs[leaf]
	return r[0], r[1], r[2], r[3]
}

func (s *scriptedReader) called(leaf uint32) bool {
	for _, l := range s.calls {
		if l == leaf {
			return true
		}
	}
	return false
}

// genuineIntel scripts a fully featured CPU: all basic and extended leaves
// this package decodes are in range.
func genuineIntel() *scriptedReader {
	return &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation: {LeafStructuredExtended, vendorGenu, vendorNtel, vendorIneI},
		// family 6, model 0x9E, stepping 10; aesni, rdrand, sse3; sse, sse2
		LeafVersionInformation: {
			0x000906EA, 0, 1 | 1<<25 | 1<<30, 1<<25 | 1<<26,
		},
		LeafThermalPowerManagement:     {1 | 1<<1, 0x2, 1, 0},
		LeafStructuredExtended:         {0, 1<<5 | 1<<18, 1, 0},
		LeafExtendedFunction:           {LeafPhysicalAddressSize, 0, 0, 0},
		LeafExtendedProcessorSignature: {0, 0, 1 << 5, 1<<20 | 1<<29},
		LeafBrandString1:               brandChunk("Intel(R) Core(TM"),
		LeafBrandString2:               brandChunk(") i7-8550U CPU @"),
		LeafBrandString3:               brandChunk(" 1.80GHz\x00       "),
		LeafCacheLine:                  {0, 0, 64 | 0x06<<12 | 1024<<16, 0},
		LeafTimeStampCounter:           {0, 0, 0, 1 << 8},
		LeafPhysicalAddressSize:        {39 | 48<<8, 0, 0, 0},
	}}
}

// brandChunk packs 16 bytes of brand text into one leaf's register tuple.
func brandChunk(s string) [4]uint32 {
	var regs [4]uint32
	for i := 0; i < 16 && i < len(s); i++ {
		regs[i/4] |= uint32(s[i]) << (8 * uint(i%4))
	}
	return regs
}

func TestVendorIdentification(t *testing.T) {
	r := genuineIntel()
	s := NewFromReader(r.read)

	assert.Equal(t, "GenuineIntel", s.VendorID())
	assert.Equal(t, "Intel", s.VendorName())

	// The documented interleaved register order.
	assert.Equal(t, []byte("Genu"), int32ToBytes(vendorGenu))
	assert.Equal(t, []byte("ntel"), int32ToBytes(vendorNtel))
	assert.Equal(t, []byte("ineI"), int32ToBytes(vendorIneI))
}

func TestSnapshotIdentity(t *testing.T) {
	s := NewFromReader(genuineIntel().read)

	assert.Equal(t, uint32(0x06), s.FamilyID())
	assert.Equal(t, uint32(0x9E), s.ModelID())
	assert.Equal(t, uint32(0x0A), s.Stepping())

	brand, ok := s.BrandString()
	require.True(t, ok)
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", brand)
}

func TestSnapshotFlags(t *testing.T) {
	s := NewFromReader(genuineIntel().read)

	assert.True(t, s.SSE3())
	assert.True(t, s.AESNI())
	assert.True(t, s.RDRAND())
	assert.True(t, s.SSE())
	assert.True(t, s.SSE2())
	assert.False(t, s.AVX())
	assert.False(t, s.FMA())

	assert.True(t, s.DigitalTemperatureSensor())
	assert.True(t, s.IntelTurboBoost())
	assert.True(t, s.HardwareCoordinationFeedback())
	assert.False(t, s.HWP())

	assert.True(t, s.AVX2())
	assert.True(t, s.RDSEED())
	assert.True(t, s.PREFETCHWT1())
	assert.False(t, s.BMI1())

	assert.True(t, s.LZCNT())
	assert.True(t, s.ExecuteDisable())
	assert.True(t, s.Intel64BitArchitecture())
	assert.False(t, s.GigabytePages())

	assert.True(t, s.InvariantTSC())
}

func TestSnapshotDirectDecoders(t *testing.T) {
	s := NewFromReader(genuineIntel().read)

	cl, ok := s.CacheLine()
	require.True(t, ok)
	assert.Equal(t, uint32(64), cl.CacheLineSize())
	assert.Equal(t, AssociativityEightWay, cl.L2Associativity())
	assert.Equal(t, uint32(1024), cl.CacheSize())

	pas, ok := s.PhysicalAddressSize()
	require.True(t, ok)
	assert.Equal(t, uint32(39), pas.PhysicalAddressBits())
	assert.Equal(t, uint32(48), pas.LinearAddressBits())
}

func TestSupportGatingQueriesNothingUnsupported(t *testing.T) {
	// A CPU reporting max basic leaf 0 and no extended leaves at all.
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation: {0, vendorGenu, vendorNtel, vendorIneI},
	}}
	s := NewFromReader(r.read)

	// Only the two maximum probes may touch the reader.
	assert.Equal(t, []uint32{LeafBasicInformation, LeafExtendedFunction}, r.calls)

	assert.False(t, s.SSE3())
	assert.False(t, s.AVX2())
	assert.False(t, s.InvariantTSC())
	assert.Equal(t, uint32(0), s.FamilyID())
	assert.Equal(t, uint32(0), s.ModelID())
	assert.Equal(t, uint32(0), s.Stepping())

	_, ok := s.VersionInformation()
	assert.False(t, ok)
	_, ok = s.PhysicalAddressSize()
	assert.False(t, ok)
	_, ok = s.BrandString()
	assert.False(t, ok)
}

func TestSupportGatingPartialBasicRange(t *testing.T) {
	// Max basic leaf 1: version information in range, leaves 6 and 7 not.
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation:   {LeafVersionInformation, vendorGenu, vendorNtel, vendorIneI},
		LeafVersionInformation: {0x000906EA, 0, 1, 0},
	}}
	s := NewFromReader(r.read)

	assert.True(t, r.called(LeafVersionInformation))
	assert.False(t, r.called(LeafThermalPowerManagement))
	assert.False(t, r.called(LeafStructuredExtended))

	assert.True(t, s.SSE3())
	assert.False(t, s.AVX2())
	assert.False(t, s.IntelTurboBoost())
}

func TestSupportGatingPartialExtendedRange(t *testing.T) {
	// Extended range stops before the brand string leaves.
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation:           {LeafVersionInformation, vendorGenu, vendorNtel, vendorIneI},
		LeafVersionInformation:         {0x000906EA, 0, 0, 0},
		LeafExtendedFunction:           {LeafExtendedProcessorSignature, 0, 0, 0},
		LeafExtendedProcessorSignature: {0, 0, 1 << 5, 0},
	}}
	s := NewFromReader(r.read)

	assert.True(t, s.LZCNT())
	assert.False(t, r.called(LeafBrandString1))
	assert.False(t, r.called(LeafBrandString2))
	assert.False(t, r.called(LeafBrandString3))
	assert.False(t, r.called(LeafCacheLine))

	_, ok := s.CacheLine()
	assert.False(t, ok)
	_, ok = s.TimeStampCounter()
	assert.False(t, ok)
}

func TestBrandStringFallsBackToBrandIndex(t *testing.T) {
	// No brand string leaves, but leaf 1 reports brand index 0x0B with a
	// signature other than 0x0F13.
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation:   {LeafVersionInformation, vendorGenu, vendorNtel, vendorIneI},
		LeafVersionInformation: {0x0F24, 0x0B, 0, 0},
	}}
	s := NewFromReader(r.read)

	brand, ok := s.BrandString()
	require.True(t, ok)
	assert.Equal(t, "Intel(R) Xeon(R)", brand)
}

func TestBrandStringLeavesPreferredOverIndex(t *testing.T) {
	r := genuineIntel()
	// Give leaf 1 a brand index too; the explicit leaves must win.
	regs := r.regs[LeafVersionInformation]
	regs[1] |= 0x0B
	r.regs[LeafVersionInformation] = regs

	s := NewFromReader(r.read)
	brand, ok := s.BrandString()
	require.True(t, ok)
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", brand)
}

func TestFlagsEnumeration(t *testing.T) {
	s := NewFromReader(genuineIntel().read)
	flags := s.Flags()
	require.Len(t, flags, len(snapshotFlags))

	byName := make(map[string]Flag, len(flags))
	for _, f := range flags {
		byName[f.Name] = f
	}
	assert.True(t, byName["avx2"].Supported)
	assert.Equal(t, "StructuredExtendedInformation", byName["avx2"].Leaf)
	assert.True(t, byName["aesni"].Supported)
	assert.False(t, byName["avx"].Supported)
	assert.False(t, byName["gigabyte_pages"].Supported)
}
