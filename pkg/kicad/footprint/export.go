package footprint

import (
	"fmt"
	"os"
	"path/filepath"
)

// Export writes the footprint into the .pretty directory at dir, creating
// it when missing. An existing .kicad_mod for the same footprint is kept as
// is unless overwrite is set; skipping still counts as success.
func Export(dir string, f *Footprint, overwrite bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create footprint library: %w", err)
	}

	path := filepath.Join(dir, fileName(f.Name)+".kicad_mod")
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(f.Encode()), 0o644); err != nil {
		return fmt.Errorf("write footprint: %w", err)
	}
	return nil
}
