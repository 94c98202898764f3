// Package preview opens a window showing a converted footprint: pads,
// silkscreen graphics and drills, with zoom and flip controls.
package preview

import (
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

// Show opens the preview window and takes over the process: it returns only
// by exiting when the window closes. Controls: scroll zooms, F flips,
// Space refits, Escape or Q quits.
func Show(fp *footprint.Footprint) {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("otparts - " + fp.Name))
		w.Option(app.Size(unit.Dp(windowWidth), unit.Dp(windowHeight)))

		if err := loop(w, fp); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, fp *footprint.Footprint) error {
	bounds := footprintBounds(fp)
	cam := NewCamera(windowWidth, windowHeight)
	cam.Fit(bounds)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}
			cam.Resize(e.Size.X, e.Size.Y)

			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}
				ke, ok := ev.(key.Event)
				if !ok || ke.State != key.Press {
					continue
				}
				switch ke.Name {
				case key.NameEscape, "Q":
					return nil
				case "F":
					cam.Flip()
				case key.NameSpace:
					cam.Fit(bounds)
				}
				w.Invalidate()
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{Kinds: pointer.Scroll})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok && pe.Kind == pointer.Scroll {
					factor := 1.0 - float64(pe.Scroll.Y)*0.1
					cam.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), factor)
					w.Invalidate()
				}
			}

			render(gtx, cam, fp)
			e.Frame(&ops)
		}
	}
}
