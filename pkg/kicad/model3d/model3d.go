// Package model3d writes downloaded 3D model payloads into a .3dshapes
// directory alongside the footprint library.
package model3d

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Asset is one downloaded 3D model in both raw formats. Either payload may
// be empty when the upstream service has only one of them.
type Asset struct {
	Name string
	OBJ  []byte
	STEP []byte
}

// Export writes the model files into dir, creating it when missing. A
// missing format is skipped silently; having neither is an error. Existing
// files are kept unless overwrite is set.
func Export(dir string, a *Asset, overwrite bool) error {
	if len(a.OBJ) == 0 && len(a.STEP) == 0 {
		return fmt.Errorf("model %q has no payload", a.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}

	name := strings.ReplaceAll(a.Name, " ", "_")
	if len(a.OBJ) > 0 {
		if err := writeModel(filepath.Join(dir, name+".obj"), a.OBJ, overwrite); err != nil {
			return err
		}
	}
	if len(a.STEP) > 0 {
		if err := writeModel(filepath.Join(dir, name+".step"), a.STEP, overwrite); err != nil {
			return err
		}
	}
	return nil
}

func writeModel(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}
