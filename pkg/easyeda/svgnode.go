package easyeda

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ModelReference is the 3D model pointer carried by a footprint's SVGNODE
// record. Origin and rotation stay in source units and degrees; Z is the
// board standoff.
type ModelReference struct {
	UUID    string
	Title   string
	OriginX float64
	OriginY float64
	Z       float64
	RotX    float64
	RotY    float64
	RotZ    float64
}

// svgNode mirrors the JSON payload of an SVGNODE record.
type svgNode struct {
	Attrs struct {
		UUID     string    `json:"uuid"`
		Title    string    `json:"title"`
		Origin   string    `json:"c_origin"`
		Rotation string    `json:"c_rotation"`
		Z        FlexFloat `json:"z"`
	} `json:"attrs"`
}

// ModelReference scans the footprint's raw shape list for an SVGNODE record
// and extracts the 3D model reference. A footprint without one returns
// (nil, nil); a present but unusable record returns an error.
func (fp *Footprint) ModelReference() (*ModelReference, error) {
	for _, record := range fp.RawShapes {
		tag, rest, ok := strings.Cut(record, fieldSep)
		if !ok || tag != SVGNodeTag {
			continue
		}
		// Only the first field holds JSON; further '~' fields are display
		// data we do not need.
		payload, _, _ := strings.Cut(rest, fieldSep)

		var node svgNode
		if err := json.Unmarshal([]byte(payload), &node); err != nil {
			return nil, fmt.Errorf("svgnode payload: %w", err)
		}
		if node.Attrs.UUID == "" {
			return nil, fmt.Errorf("svgnode has no model uuid")
		}
		if err := uuid.Validate(node.Attrs.UUID); err != nil {
			return nil, fmt.Errorf("svgnode model uuid %q: %w", node.Attrs.UUID, err)
		}

		ref := &ModelReference{
			UUID:  node.Attrs.UUID,
			Title: node.Attrs.Title,
			Z:     float64(node.Attrs.Z),
		}
		if ref.Title == "" {
			ref.Title = "model"
		}
		ref.OriginX, ref.OriginY = parsePair(node.Attrs.Origin)
		ref.RotX, ref.RotY, ref.RotZ = parseTriple(node.Attrs.Rotation)
		return ref, nil
	}
	return nil, nil
}

func parsePair(s string) (float64, float64) {
	parts := strings.Split(s, ",")
	var v [2]float64
	for i := 0; i < len(parts) && i < 2; i++ {
		v[i], _ = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
	}
	return v[0], v[1]
}

func parseTriple(s string) (float64, float64, float64) {
	parts := strings.Split(s, ",")
	var v [3]float64
	for i := 0; i < len(parts) && i < 3; i++ {
		v[i], _ = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
	}
	return v[0], v[1], v[2]
}
