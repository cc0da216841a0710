package cpuid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// brandReader scripts the three brand string leaves from 48 bytes of text.
func brandReader(text string) LeafReader {
	for len(text) < brandStringLength {
		text += "\x00"
	}
	regs := map[uint32][4]uint32{
		LeafBrandString1: brandChunk(text[0:16]),
		LeafBrandString2: brandChunk(text[16:32]),
		LeafBrandString3: brandChunk(text[32:48]),
	}
	return func(leaf, subleaf uint32) (uint32, uint32, uint32, uint32) {
		r := regs[leaf]
		return r[0], r[1], r[2], r[3]
	}
}

func TestBrandStringDecode(t *testing.T) {
	bs := newBrandString(brandReader("GenuineIntel CPU"))
	assert.Equal(t, "GenuineIntel CPU", bs.String())
}

func TestBrandStringTruncatesAtNull(t *testing.T) {
	bs := newBrandString(brandReader("Intel(R) Xeon(R) CPU\x00garbage after the null"))
	assert.Equal(t, "Intel(R) Xeon(R) CPU", bs.String())
}

func TestBrandStringTrimsWhitespace(t *testing.T) {
	bs := newBrandString(brandReader("      Intel(R) Xeon(R) CPU E5-2690    \x00"))
	assert.Equal(t, "Intel(R) Xeon(R) CPU E5-2690", bs.String())
}

func TestBrandStringEmptyWhenNullFirst(t *testing.T) {
	bs := newBrandString(brandReader("\x00Intel"))
	assert.Equal(t, "", bs.String())
}

func TestBrandStringEmptyWithoutNull(t *testing.T) {
	bs := newBrandString(brandReader(strings.Repeat("x", brandStringLength)))
	assert.Equal(t, "", bs.String())
}

func TestBrandStringDeterministic(t *testing.T) {
	r := brandReader("  Intel(R) Core(TM) i9-9900K CPU @ 3.60GHz\x00")
	first := newBrandString(r)
	second := newBrandString(r)
	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first, second)
}
