package cpuid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry represents one recorded leaf query. Subleaf is always 0 for the
// leaves this package decodes but is kept in the format so captures taken
// with other tools stay readable.
type Entry struct {
	Leaf    uint32 `json:"leaf" yaml:"leaf"`
	Subleaf uint32 `json:"subleaf" yaml:"subleaf"`
	EAX     uint32 `json:"eax" yaml:"eax"`
	EBX     uint32 `json:"ebx" yaml:"ebx"`
	ECX     uint32 `json:"ecx" yaml:"ecx"`
	EDX     uint32 `json:"edx" yaml:"edx"`
}

// Data holds a capture of raw leaf queries. A capture taken on one machine
// can be replayed anywhere through Reader.
type Data struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// captureCeiling bounds how far past the declared maximum leaf number a
// capture will walk. Malformed hardware (or a hostile capture) can report a
// maximum in the billions; real CPUs stay well below this.
const captureCeiling = 0x100

// Capture walks every basic and extended leaf the reader's CPU declares,
// at sub-leaf 0, and records the raw registers.
func Capture(r LeafReader) Data {
	var data Data

	record := func(leaf uint32) {
		a, b, c, d := r(leaf, 0)
		data.Entries = append(data.Entries, Entry{
			Leaf: leaf, EAX: a, EBX: b, ECX: c, EDX: d,
		})
	}

	maxFunc, maxExtFunc := maxFunctions(r)
	if maxFunc > captureCeiling {
		maxFunc = captureCeiling
	}
	for leaf := uint32(0); leaf <= maxFunc; leaf++ {
		record(leaf)
	}

	if maxExtFunc > LeafExtendedFunction+captureCeiling {
		maxExtFunc = LeafExtendedFunction + captureCeiling
	}
	for leaf := LeafExtendedFunction; leaf >= LeafExtendedFunction && leaf <= maxExtFunc; leaf++ {
		record(leaf)
	}

	return data
}

// Reader returns a LeafReader that replays the capture. Leaves not present
// in the capture read as zero, so an incomplete capture behaves like a CPU
// that does not support the missing leaves.
func (d Data) Reader() LeafReader {
	type key struct{ leaf, subleaf uint32 }
	regs := make(map[key][4]uint32, len(d.Entries))
	for _, e := range d.Entries {
		regs[key{e.Leaf, e.Subleaf}] = [4]uint32{e.EAX, e.EBX, e.ECX, e.EDX}
	}
	return func(leaf, subleaf uint32) (uint32, uint32, uint32, uint32) {
		r := regs[key{leaf, subleaf}]
		return r[0], r[1], r[2], r[3]
	}
}

// WriteFile writes the capture to filename, YAML for a .yaml or .yml
// extension and JSON otherwise.
func (d Data) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writing capture: %w", err)
	}
	defer file.Close()

	if isYAML(filename) {
		enc := yaml.NewEncoder(file)
		defer enc.Close()
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encoding capture: %w", err)
		}
		return nil
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding capture: %w", err)
	}
	return nil
}

// ReadFile loads a capture written by WriteFile, picking the format from
// the file extension the same way.
func ReadFile(filename string) (Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Data{}, fmt.Errorf("reading capture: %w", err)
	}
	defer file.Close()

	var data Data
	if isYAML(filename) {
		if err := yaml.NewDecoder(file).Decode(&data); err != nil {
			return Data{}, fmt.Errorf("decoding capture: %w", err)
		}
		return data, nil
	}
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return Data{}, fmt.Errorf("decoding capture: %w", err)
	}
	return data, nil
}

func isYAML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
