package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceParts/internal/config"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/convert"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda/api"
)

var (
	convertSymbol    bool
	convertFootprint bool
	convertModel     bool
	convertOutput    string
	convertLib       string
	noOverwrite      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <lcsc-id>",
	Short: "Import a component into the KiCad library",
	Long: `Fetch a component from the LCSC/EasyEDA part database and add it to
the local KiCad library. Without artifact flags all three artifacts are
imported; with flags only the named ones.

The library location comes from the config file and environment
(OTPARTS_OUTPUT, OTPARTS_LIB, OTPARTS_OVERWRITE), overridable per run
with --output and --lib.

Exit status is 0 when everything requested succeeded, 2 when some
artifacts failed, and 1 when nothing succeeded.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&convertSymbol, "symbol", false, "import the symbol")
	convertCmd.Flags().BoolVar(&convertFootprint, "footprint", false, "import the footprint")
	convertCmd.Flags().BoolVar(&convertModel, "model", false, "import the 3D model")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output directory")
	convertCmd.Flags().StringVar(&convertLib, "lib", "", "library base name")
	convertCmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "keep existing components")
}

func runConvert(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !strings.HasPrefix(id, "C") {
		return fmt.Errorf("LCSC part numbers start with 'C' (got %q)", id)
	}

	steps := convert.Steps{
		Symbol:    convertSymbol,
		Footprint: convertFootprint,
		Model:     convertModel,
	}
	if !steps.Symbol && !steps.Footprint && !steps.Model {
		steps = convert.Steps{Symbol: true, Footprint: true, Model: true}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if convertOutput != "" {
		cfg.OutputDir = convertOutput
	}
	if convertLib != "" {
		cfg.Library = convertLib
	}
	if noOverwrite {
		cfg.Overwrite = false
	}

	logger := newLogger()
	base, err := convert.Library(cfg.OutputDir, cfg.Library)
	if err != nil {
		return err
	}
	logger.Printf("using library %s", base)

	client, err := api.NewClient(api.Options{Logger: logger})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	doc, err := client.ComponentData(ctx, id)
	if err != nil {
		return err
	}

	conv := convert.NewConverter(doc, base, convert.Options{
		Overwrite: cfg.Overwrite,
		Fetcher:   client,
		Logger:    logger,
	})
	res := conv.Convert(ctx, steps)

	switch {
	case res.OK():
		fmt.Printf("Imported %s into %s\n", id, base)
		return nil
	case res.TotalFailure():
		return &exitError{
			msg:  fmt.Sprintf("could not import %s: %s failed", id, strings.Join(res.Failed(), ", ")),
			code: 1,
		}
	default:
		return &exitError{
			msg:  fmt.Sprintf("partially imported %s: %s failed", id, strings.Join(res.Failed(), ", ")),
			code: 2,
		}
	}
}
