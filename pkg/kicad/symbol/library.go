package symbol

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/sexp"
)

const emptyLibrary = "(kicad_symbol_lib\n  (version 20211014)\n  (generator otparts)\n)\n"

// EnsureLibrary creates an empty symbol library at path when none exists.
func EnsureLibrary(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(emptyLibrary), 0o644)
}

// Update writes the symbol into the library at path, creating the library
// when missing. An existing record with the same identifier is replaced in
// place when overwrite is set; otherwise the file is left untouched and the
// update still counts as successful.
func Update(path string, s *Symbol, overwrite bool) error {
	id := ID(s.Info.Name)

	content := emptyLibrary
	if raw, err := os.ReadFile(path); err == nil {
		content = string(raw)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read symbol library: %w", err)
	}

	if sexp.HasRecord(content, "symbol", id) {
		if !overwrite {
			return nil
		}
		content = sexp.RemoveRecord(content, "symbol", id)
	}

	updated, err := sexp.InsertRecord(content, s.Encode())
	if err != nil {
		return fmt.Errorf("update symbol library: %w", err)
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write symbol library: %w", err)
	}
	return nil
}
