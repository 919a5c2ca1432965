// Package romimage loads the two 32 KiB firmware blobs (u15.bin, u16.bin)
// from a ROM directory into their banks (§6 ROM image contract).
package romimage

import (
	"fmt"
	"os"
	"path/filepath"
)

const bankSize = 0x8000

// Loader is anything that accepts a bank-indexed image, satisfied by
// *workslate.Bus without importing it (keeps romimage dependency-free of
// the CPU core).
type Loader interface {
	LoadBank(bank int, data []byte)
}

// images names the ROM files expected in romdir and the bank each lands in,
// per the teacher's u14/u15/u16 bank numbering (bank 3 is active at reset).
var images = []struct {
	file string
	bank int
}{
	{"u15.bin", 2},
	{"u16.bin", 3},
}

// Load reads u15.bin and u16.bin from romdir and loads them into sys. Each
// blob must be at most 32 KiB; a short file is accepted (Bus.LoadBank leaves
// the rest of the bank as it was, 0xFF after NewBus), a malformed directory
// is not.
func Load(romdir string, sys Loader) error {
	for _, img := range images {
		path := filepath.Join(romdir, img.file)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("romimage: %w", err)
		}
		if len(data) > bankSize {
			return fmt.Errorf("romimage: %s is %d bytes, exceeds %d-byte bank", path, len(data), bankSize)
		}
		sys.LoadBank(img.bank, data)
	}
	return nil
}
