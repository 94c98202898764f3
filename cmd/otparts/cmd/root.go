package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otparts",
	Short: "OpenTraceParts - LCSC/EasyEDA to KiCad library converter",
	Long: `OpenTraceParts (otparts) imports electronic components from the
LCSC/EasyEDA part database into KiCad libraries: schematic symbols,
footprints and 3D models.

Examples:
  otparts convert C2040                   # Import symbol, footprint and 3D model
  otparts convert C2040 --symbol          # Import the symbol only
  otparts convert C7593 --output ~/kicad  # Import into a specific directory
  otparts inspect otparts.kicad_sym       # List the records of a library file
  otparts preview C2040                   # Show the footprint in a window`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a specific exit status out of a command.
type exitError struct {
	msg  string
	code int
}

func (e *exitError) Error() string { return e.msg }

// Execute runs the root command. Exit status 0 means success, 1 failure;
// commands can request other codes through exitError.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// newLogger returns the diagnostic logger; quiet unless --verbose is set.
func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", 0)
	}
	return log.New(io.Discard, "", 0)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
