package footprint

// Source CAD layer ids mapped to KiCad layer names. Ids outside the table
// land on the front silkscreen, matching how unknown drawing layers are
// treated elsewhere in the converter.
var layerTable = map[int]string{
	1:  "F.Cu",
	2:  "B.Cu",
	3:  "F.SilkS",
	4:  "B.SilkS",
	5:  "F.Paste",
	6:  "B.Paste",
	7:  "F.Mask",
	8:  "B.Mask",
	10: "Edge.Cuts",
	11: "Edge.Cuts",
	12: "Cmts.User",
	13: "F.Fab",
	14: "B.Fab",
	15: "Dwgs.User",
}

// Layer maps a source layer id to its KiCad layer name.
func Layer(id int) string {
	if name, ok := layerTable[id]; ok {
		return name
	}
	return "F.SilkS"
}

// PadLayers returns the layer set for a pad. Through-hole and plain hole
// pads span all copper layers; SMD pads follow their source side.
func PadLayers(layerID int, padType PadType) []string {
	if padType != PadSMD {
		return []string{"*.Cu", "*.Mask"}
	}
	if layerID == 2 {
		return []string{"B.Cu", "B.Paste", "B.Mask"}
	}
	return []string{"F.Cu", "F.Paste", "F.Mask"}
}
