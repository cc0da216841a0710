package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyModelDecode(t *testing.T) {
	cases := []struct {
		name     string
		eax      uint32
		family   uint32
		model    uint32
		stepping uint32
	}{
		{
			// Base family 0x06 combines the extended model nibble.
			name:     "family 6 uses extended model",
			eax:      0x6<<8 | 0x5<<4 | 0x3<<16,
			family:   0x06,
			model:    0x35,
			stepping: 0,
		},
		{
			// Base family 0x0F adds the extended family.
			name:     "family 0x0F adds extended family",
			eax:      0xF<<8 | 0x02<<20,
			family:   0x11,
			model:    0,
			stepping: 0,
		},
		{
			// Families other than 0x06/0x0F ignore the extended model.
			name:     "other families ignore extended model",
			eax:      0x5<<8 | 0x4<<4 | 0x7<<16,
			family:   0x05,
			model:    0x04,
			stepping: 0,
		},
		{
			name:     "family 0x0F with zero extension uses extended model",
			eax:      0xF<<8 | 0x2<<4 | 0x1<<16 | 0xD,
			family:   0x0F,
			model:    0x12,
			stepping: 0xD,
		},
		{
			name:     "coffee lake signature",
			eax:      0x000906EA,
			family:   0x06,
			model:    0x9E,
			stepping: 0x0A,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := VersionInformation{eax: tc.eax}
			assert.Equal(t, tc.family, v.FamilyID())
			assert.Equal(t, tc.model, v.ModelID())
			assert.Equal(t, tc.stepping, v.Stepping())
		})
	}
}

func TestBrandIndexTable(t *testing.T) {
	cases := []struct {
		name  string
		ebx   uint32
		eax   uint32
		brand string
		ok    bool
	}{
		{"index 0 has no name", 0x00, 0, "", false},
		{"index 3 celeron signature", 0x03, 0x06B1, "Intel(R) Celeron(R)", true},
		{"index 3 other signature", 0x03, 0x06B4, "Intel(R) Pentium(R) III Xeon(R)", true},
		{"index 0x0B xeon mp signature", 0x0B, 0x0F13, "Intel(R) Xeon(R) MP", true},
		{"index 0x0B other signature", 0x0B, 0x0F24, "Intel(R) Xeon(R)", true},
		{"index 0x0E xeon signature", 0x0E, 0x0F13, "Intel(R) Xeon(R)", true},
		{"index 0x0E other signature", 0x0E, 0x0F29, "Mobile Intel(R) Pentium(R) 4-M", true},
		{"index 0x17 last entry", 0x17, 0, "Mobile Intel(R) Celeron(R)", true},
		{"index 0x05 unassigned", 0x05, 0, "", false},
		{"index 0x10 unassigned", 0x10, 0, "", false},
		{"index 0xFF unassigned", 0xFF, 0, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := VersionInformation{eax: tc.eax, ebx: tc.ebx}
			brand, ok := v.BrandString()
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.brand, brand)
		})
	}
}

func TestBrandIndexUsesLowByteOnly(t *testing.T) {
	// Bits above ebx[0:7] belong to other fields and must not leak into
	// the index.
	v := VersionInformation{ebx: 0xFFFF0100 | 0x01}
	brand, ok := v.BrandString()
	require.True(t, ok)
	assert.Equal(t, "Intel(R) Celeron(R)", brand)
}

func TestVersionInformationFeatureBits(t *testing.T) {
	v := VersionInformation{
		ecx: 1 | 1<<12 | 1<<19 | 1<<20 | 1<<25 | 1<<28 | 1<<30,
		edx: 1 | 1<<23 | 1<<25 | 1<<26 | 1<<28,
	}

	assert.True(t, v.SSE3())
	assert.True(t, v.FMA())
	assert.True(t, v.SSE41())
	assert.True(t, v.SSE42())
	assert.True(t, v.AESNI())
	assert.True(t, v.AVX())
	assert.True(t, v.RDRAND())
	assert.False(t, v.VMX())
	assert.False(t, v.XSAVE())

	assert.True(t, v.FPU())
	assert.True(t, v.MMX())
	assert.True(t, v.SSE())
	assert.True(t, v.SSE2())
	assert.True(t, v.HTT())
	assert.False(t, v.PBE())
	assert.False(t, v.TSC())
}
