package cpuid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWalksDeclaredLeaves(t *testing.T) {
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation: {2, vendorGenu, vendorNtel, vendorIneI},
		LeafExtendedFunction: {LeafBrandString1, 0, 0, 0},
		LeafBrandString1:     brandChunk("Intel(R) Xeon(R)"),
	}}
	data := Capture(r.read)

	// Leaves 0..2 plus 0x80000000..0x80000002.
	require.Len(t, data.Entries, 6)
	assert.Equal(t, uint32(0), data.Entries[0].Leaf)
	assert.Equal(t, vendorGenu, int(data.Entries[0].EBX))
	assert.Equal(t, LeafBrandString1, data.Entries[5].Leaf)
}

func TestCaptureHonorsCeiling(t *testing.T) {
	r := &scriptedReader{regs: map[uint32][4]uint32{
		LeafBasicInformation: {0xFFFF0000, 0, 0, 0},
		LeafExtendedFunction: {0xFFFFFFFF, 0, 0, 0},
	}}
	data := Capture(r.read)
	assert.LessOrEqual(t, len(data.Entries), 2*(captureCeiling+1))
}

func TestCaptureReplayRoundTrip(t *testing.T) {
	original := genuineIntel()
	data := Capture(original.read)
	replay := data.Reader()

	for leaf, want := range original.regs {
		a, b, c, d := replay(leaf, 0)
		assert.Equal(t, want, [4]uint32{a, b, c, d}, "leaf %#x", leaf)
	}

	// A snapshot from the replay matches one from the source.
	fromReplay := NewFromReader(replay)
	fromSource := NewFromReader(genuineIntel().read)
	assert.Equal(t, fromSource.VendorID(), fromReplay.VendorID())
	assert.Equal(t, fromSource.Flags(), fromReplay.Flags())
}

func TestReplayMissingLeafReadsZero(t *testing.T) {
	replay := Data{}.Reader()
	a, b, c, d := replay(1, 0)
	assert.Zero(t, a)
	assert.Zero(t, b)
	assert.Zero(t, c)
	assert.Zero(t, d)
}

func TestCaptureFileRoundTrip(t *testing.T) {
	data := Capture(genuineIntel().read)

	for _, name := range []string{"cpuid_data.json", "cpuid_data.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, data.WriteFile(path))

			loaded, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, data, loaded)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
