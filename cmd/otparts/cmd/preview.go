package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/internal/preview"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/convert"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda/api"
)

var previewCmd = &cobra.Command{
	Use:   "preview <lcsc-id|document.json>",
	Short: "Show a component footprint in a window",
	Long: `Fetch a component by its LCSC part number (or read a saved EasyEDA
document from a file) and render its footprint.

Controls: scroll to zoom, F to flip sides, Space to refit, Escape to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	doc, err := previewDocument(cmd, args[0], logger)
	if err != nil {
		return err
	}

	decoder := easyeda.NewDecoder(logger)
	src, _, err := decoder.Footprint(doc)
	if err != nil {
		return fmt.Errorf("decoding footprint: %w", err)
	}

	fp, warnings := convert.Footprint(src)
	for _, w := range warnings {
		logger.Printf("warning: %s", w)
	}

	fmt.Printf("Previewing %s (%d pads)\n", fp.Name, len(fp.Pads))
	preview.Show(fp)
	return nil
}

func previewDocument(cmd *cobra.Command, arg string, logger *log.Logger) (*easyeda.Document, error) {
	if strings.HasPrefix(arg, "C") {
		client, err := api.NewClient(api.Options{Logger: logger})
		if err != nil {
			return nil, err
		}
		return client.ComponentData(cmd.Context(), arg)
	}

	raw, err := os.ReadFile(arg)
	if err != nil {
		return nil, err
	}
	return easyeda.ParseDocument(raw)
}
