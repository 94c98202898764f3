// Package units converts between EasyEDA drawing units and the millimeter
// coordinate system used by KiCad library files.
//
// EasyEDA stores symbol and footprint geometry in a pixel grid where one
// pixel is 10 mil (0.254 mm). KiCad files are plain millimeters. Symbol
// coordinates additionally flip the Y axis: EasyEDA Y grows downward,
// KiCad Y grows upward.
package units

import "math"

// One EasyEDA unit is 10 mil; one mil is 0.0254 mm.
const (
	MilToMM   = 0.0254
	UnitToMM  = 10 * MilToMM
	MMToUnits = 1 / UnitToMM
)

// ToMM converts an EasyEDA linear value to millimeters.
func ToMM(v float64) float64 {
	return v * UnitToMM
}

// FromMM converts millimeters back to EasyEDA units.
func FromMM(v float64) float64 {
	return v * MMToUnits
}

// SymbolX converts an EasyEDA symbol X coordinate, re-based on the header
// origin, to millimeters.
func SymbolX(x, originX float64) float64 {
	return ToMM(x - originX)
}

// SymbolY converts an EasyEDA symbol Y coordinate to millimeters. The Y axis
// is inverted: EasyEDA Y grows downward, KiCad symbol Y grows upward.
func SymbolY(y, originY float64) float64 {
	return -ToMM(y - originY)
}

// PinOrientation maps an EasyEDA pin rotation to a KiCad pin angle. EasyEDA
// pins point into the body, KiCad pins point away from it, so the angle is
// phase shifted by 180 degrees.
func PinOrientation(rotation int) int {
	return ((180+rotation)%360 + 360) % 360
}

// ModelTranslation converts a 3D model placement from EasyEDA units to KiCad
// millimeters. X passes through, Y and Z are inverted for the handedness
// difference between the two tools. bboxX/bboxY is the footprint header
// origin in EasyEDA units.
func ModelTranslation(x, y, z, bboxX, bboxY float64) (tx, ty, tz float64) {
	tx = (x - bboxX) * UnitToMM
	ty = -(y - bboxY) * UnitToMM
	tz = -z * UnitToMM
	return tx, ty, tz
}

// ModelRotation complements a 3D model rotation angle for the handedness
// difference between EasyEDA and KiCad model space.
func ModelRotation(angle float64) float64 {
	return math.Mod(360-angle+360, 360)
}
