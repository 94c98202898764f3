// Package convert turns decoded EasyEDA components into KiCad library
// artifacts: symbol records in a shared .kicad_sym file, .kicad_mod files
// in a .pretty directory, and 3D model payloads in a .3dshapes directory.
package convert

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/model3d"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/symbol"
)

// ModelFetcher retrieves 3D model payloads by their SVGNODE uuid. Both
// methods may fail independently; the converter tolerates one missing
// format as long as the other arrives.
type ModelFetcher interface {
	ModelMesh(ctx context.Context, uuid string) ([]byte, error)
	ModelSolid(ctx context.Context, uuid string) ([]byte, error)
}

// Options configures a Converter.
type Options struct {
	// Overwrite replaces existing symbol records, footprint files and
	// model files. When false, existing artifacts are kept and the step
	// still counts as successful.
	Overwrite bool
	// Fetcher supplies 3D model payloads. When nil, footprints are
	// written without a model block and the standalone model step fails
	// for parts that reference one.
	Fetcher ModelFetcher
	// Logger receives skip and warning messages. Nil silences them.
	Logger *log.Logger
}

// Converter exports one component's artifacts under a library base path.
// The base is the library path prefix without extension: artifacts land in
// <base>.kicad_sym, <base>.pretty/ and <base>.3dshapes/.
type Converter struct {
	doc     *easyeda.Document
	base    string
	lib     string
	name    string
	fetcher ModelFetcher
	decoder *easyeda.Decoder
	over    bool
	logger  *log.Logger
}

// NewConverter prepares a converter for one component document.
func NewConverter(doc *easyeda.Document, base string, opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Converter{
		doc:     doc,
		base:    base,
		lib:     filepath.Base(base),
		name:    SanitizeName(doc.Title),
		fetcher: opts.Fetcher,
		decoder: easyeda.NewDecoder(logger),
		over:    opts.Overwrite,
		logger:  logger,
	}
}

// Status is the outcome of one artifact step.
type Status int

const (
	// StatusSkipped means the step was not requested.
	StatusSkipped Status = iota
	StatusOK
	StatusFailed
)

// Steps selects which artifacts to export.
type Steps struct {
	Symbol    bool
	Footprint bool
	Model     bool
}

// Result holds the per-artifact outcomes of a Convert call.
type Result struct {
	Symbol    Status
	Footprint Status
	Model     Status
}

// OK reports whether every requested step succeeded.
func (r Result) OK() bool {
	return r.Symbol != StatusFailed && r.Footprint != StatusFailed && r.Model != StatusFailed
}

// TotalFailure reports whether no requested step succeeded.
func (r Result) TotalFailure() bool {
	return r.Symbol != StatusOK && r.Footprint != StatusOK && r.Model != StatusOK
}

// Failed lists the names of the failed steps.
func (r Result) Failed() []string {
	var names []string
	if r.Symbol == StatusFailed {
		names = append(names, "symbol")
	}
	if r.Footprint == StatusFailed {
		names = append(names, "footprint")
	}
	if r.Model == StatusFailed {
		names = append(names, "model")
	}
	return names
}

// Convert runs the requested steps. Each step fails independently; the
// result distinguishes full success, partial success and total failure.
func (c *Converter) Convert(ctx context.Context, steps Steps) Result {
	var res Result
	run := func(name string, fn func() error) Status {
		if err := fn(); err != nil {
			c.logger.Printf("%s: %s export failed: %v", c.name, name, err)
			return StatusFailed
		}
		return StatusOK
	}
	if steps.Symbol {
		res.Symbol = run("symbol", c.ConvertSymbol)
	}
	if steps.Footprint {
		res.Footprint = run("footprint", func() error { return c.ConvertFootprint(ctx) })
	}
	if steps.Model {
		res.Model = run("model", func() error { return c.ConvertModel(ctx) })
	}
	return res
}

// ConvertSymbol decodes the symbol payload and updates the library file.
// A payload without drawable content gets a synthesized rectangular body
// instead.
func (c *Converter) ConvertSymbol() error {
	src, _, err := c.decoder.Symbol(c.doc)
	if err != nil {
		return err
	}

	var (
		sym      *symbol.Symbol
		warnings []Warning
	)
	if drawable(src) {
		sym, warnings = Symbol(src)
	} else {
		sym, warnings = Fallback(src.Info, c.padNumbers())
	}
	for _, w := range warnings {
		c.logger.Printf("%s: %s", c.name, w)
	}

	if sym.Info.Name == "" {
		sym.Info.Name = c.name
	}
	if sym.Info.Footprint != "" {
		// Qualify with the footprint library so placed symbols resolve
		// without a library table edit.
		sym.Info.Footprint = c.lib + ":" + strings.ReplaceAll(sym.Info.Footprint, " ", "_")
	}

	return symbol.Update(c.base+".kicad_sym", sym, c.over)
}

// ConvertFootprint decodes the footprint payload and writes a .kicad_mod
// file. When the payload references a 3D model and a fetcher is configured,
// the model files are exported alongside and the footprint gets a model
// block. A failed model fetch degrades to a footprint without one.
func (c *Converter) ConvertFootprint(ctx context.Context) error {
	src, _, err := c.decoder.Footprint(c.doc)
	if err != nil {
		return err
	}

	fp, warnings := Footprint(src)
	for _, w := range warnings {
		c.logger.Printf("%s: %s", c.name, w)
	}

	if c.fetcher != nil {
		ref, err := src.ModelReference()
		switch {
		case err != nil:
			c.logger.Printf("%s: 3d model reference unusable: %v", c.name, err)
		case ref != nil:
			if err := c.exportModel(ctx, ref); err != nil {
				c.logger.Printf("%s: 3d model export failed: %v", c.name, err)
			} else {
				fp.Model = Model(ref, c.lib, c.name, src.Origin)
			}
		}
	}

	return footprint.Export(c.base+".pretty", fp, c.over)
}

// ConvertModel exports the 3D model files on their own. A footprint without
// a model reference is not an error, just nothing to do.
func (c *Converter) ConvertModel(ctx context.Context) error {
	src, _, err := c.decoder.Footprint(c.doc)
	if err != nil {
		return err
	}
	ref, err := src.ModelReference()
	if err != nil {
		return err
	}
	if ref == nil {
		c.logger.Printf("%s: no 3d model available", c.name)
		return nil
	}
	if c.fetcher == nil {
		return fmt.Errorf("no model fetcher configured")
	}
	return c.exportModel(ctx, ref)
}

func (c *Converter) exportModel(ctx context.Context, ref *easyeda.ModelReference) error {
	asset := &model3d.Asset{Name: c.name}

	obj, objErr := c.fetcher.ModelMesh(ctx, ref.UUID)
	if objErr != nil {
		c.logger.Printf("%s: mesh fetch: %v", c.name, objErr)
	} else {
		asset.OBJ = obj
	}
	step, stepErr := c.fetcher.ModelSolid(ctx, ref.UUID)
	if stepErr != nil {
		c.logger.Printf("%s: solid fetch: %v", c.name, stepErr)
	} else {
		asset.STEP = step
	}
	if objErr != nil && stepErr != nil {
		return fmt.Errorf("model %s: no payload retrieved", ref.UUID)
	}

	return model3d.Export(c.base+".3dshapes", asset, c.over)
}

// padNumbers collects the footprint's pad numbers for fallback pin
// synthesis. A missing or undecodable footprint yields none.
func (c *Converter) padNumbers() []string {
	src, _, err := c.decoder.Footprint(c.doc)
	if err != nil {
		return nil
	}
	return PadNumbers(src)
}

// drawable reports whether the symbol has enough geometry to export as is.
// Pads-only parts ship empty symbol payloads and get a fallback body.
func drawable(sym *easyeda.Symbol) bool {
	return len(sym.Pins) > 0 || len(sym.Rectangles) > 0 ||
		len(sym.Circles) > 0 || len(sym.Polygons) > 0
}
