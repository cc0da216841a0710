//go:build !amd64

package cpuid

// cpuid is a stub for architectures without the identification instruction.
// Every leaf reads as zero, so a Snapshot reports no features supported.
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
