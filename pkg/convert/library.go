package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/symbol"
)

// SanitizeName makes a component title safe for use as a file name and
// symbol id: filesystem-reserved characters become underscores and runs of
// whitespace collapse to a single underscore.
func SanitizeName(name string) string {
	const reserved = `<>:"/\|?*`
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(reserved, r) {
			return '_'
		}
		return r
	}, name)
	return strings.Join(strings.Fields(name), "_")
}

// Library creates the on-disk library structure under dir: the symbol
// library file with an empty envelope plus the footprint and 3D model
// directories, all named lib. Existing pieces are left alone. It returns
// the base path the Converter exports against.
func Library(dir, lib string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("library dir: %w", err)
	}
	base := filepath.Join(dir, lib)
	for _, sub := range []string{base + ".pretty", base + ".3dshapes"} {
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return "", fmt.Errorf("library dir: %w", err)
		}
	}
	if err := symbol.EnsureLibrary(base + ".kicad_sym"); err != nil {
		return "", err
	}
	return base, nil
}
