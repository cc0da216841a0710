//go:build amd64

package cpuid

// cpuid executes the CPUID instruction with leaf in EAX and subleaf in ECX.
// Implemented in cpuid_amd64.s.
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)
