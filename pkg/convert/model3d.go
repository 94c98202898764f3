package convert

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/footprint"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/units"
)

// ModelPathVar is the environment variable KiCad resolves 3D model paths
// against. Users point it at the directory holding the .3dshapes folders.
const ModelPathVar = "OTPARTS_DIR"

// Model builds the footprint's 3D model block from a decoded SVGNODE
// reference. libName is the library base name (the .3dshapes directory is
// derived from it), modelName the exported file name without extension.
// origin is the footprint header origin the placement is relative to.
func Model(ref *easyeda.ModelReference, libName, modelName string, origin easyeda.Point) *footprint.Model {
	tx, ty, tz := units.ModelTranslation(ref.OriginX, ref.OriginY, ref.Z, origin.X, origin.Y)
	return &footprint.Model{
		Path: fmt.Sprintf("${%s}/%s.3dshapes/%s.wrl",
			ModelPathVar, libName, strings.ReplaceAll(modelName, " ", "_")),
		OffsetX: tx,
		OffsetY: ty,
		OffsetZ: tz,
		ScaleX:  1,
		ScaleY:  1,
		ScaleZ:  1,
		RotateX: units.ModelRotation(ref.RotX),
		RotateY: units.ModelRotation(ref.RotY),
		RotateZ: units.ModelRotation(ref.RotZ),
	}
}
