package cmd

import (
	"fmt"
	"os"

	chewxy "github.com/chewxy/sexp"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/sexp"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <library-file>",
	Short: "List the records of a KiCad library file",
	Long: `Parse a .kicad_sym or .kicad_mod file and list its records: symbol
names with their pin counts, or footprint pads. Useful for checking what a
conversion produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	// Independent syntax check with a second parser; catches emitter bugs
	// the lenient internal one would gloss over.
	if _, err := chewxy.ParseString(string(data)); err != nil {
		return fmt.Errorf("%s is not well-formed: %w", filename, err)
	}

	exprs, err := sexp.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	if len(exprs) == 0 {
		return fmt.Errorf("%s holds no expressions", filename)
	}

	root := exprs[0]
	name, err := sexp.NodeName(root)
	if err != nil {
		return err
	}

	switch name {
	case "kicad_symbol_lib":
		return inspectSymbolLib(filename, root)
	case "footprint", "module":
		return inspectFootprint(filename, root)
	default:
		fmt.Printf("%s: %s document, %d leaves\n", filename, name, root.LeafCount())
		return nil
	}
}

func inspectSymbolLib(filename string, root sexp.Sexp) error {
	records := sexp.FindAllNodes(root, "symbol")
	fmt.Printf("%s: symbol library, %d symbols\n", filename, len(records))
	for _, rec := range records {
		name, err := sexp.GetString(rec, 1)
		if err != nil {
			continue
		}
		pins := 0
		for _, unit := range sexp.FindAllNodes(rec, "symbol") {
			pins += len(sexp.FindAllNodes(unit, "pin"))
		}
		fmt.Printf("  %-32s %d pins\n", name, pins)
	}
	return nil
}

func inspectFootprint(filename string, root sexp.Sexp) error {
	name, _ := sexp.GetString(root, 1)
	pads := sexp.FindAllNodes(root, "pad")
	fmt.Printf("%s: footprint %q, %d pads\n", filename, name, len(pads))
	for _, pad := range pads {
		num, err := sexp.GetString(pad, 1)
		if err != nil {
			continue
		}
		kind, _ := sexp.GetString(pad, 2)
		shape, _ := sexp.GetString(pad, 3)
		fmt.Printf("  pad %-6s %s %s\n", num, kind, shape)
	}
	if models := sexp.FindAllNodes(root, "model"); len(models) > 0 {
		path, _ := sexp.GetString(models[0], 1)
		fmt.Printf("  model %s\n", path)
	}
	return nil
}
