package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/easyeda"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/kicad/symbol"
)

// Fallback symbol geometry, all in millimeters.
const (
	fallbackPinSpacing = 2.54
	fallbackPinLength  = 2.54
	defaultPinCount    = 8
)

var (
	packagePinCountRe = regexp.MustCompile(`-(\d+)(?:_|$)`)
	namedPinCountRe   = regexp.MustCompile(`(\d+)[-_]?(?:pin|Pin|PIN)`)
)

// PinCountFromPackage guesses the pin count encoded in a package name like
// "LQFN-56_L7.0-W7.0" or "SOT-23-3L". Zero means no count was found.
func PinCountFromPackage(name string) int {
	if m := packagePinCountRe.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := namedPinCountRe.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// PadNumbers collects the pad numbers of a decoded footprint, in pad order.
func PadNumbers(fp *easyeda.Footprint) []string {
	var numbers []string
	for _, pad := range fp.Pads {
		if pad.Number != "" {
			numbers = append(numbers, pad.Number)
		}
	}
	return numbers
}

// Fallback synthesizes a generic boxed symbol for a part whose payload has
// no symbol data. Pad numbers take priority over the package-name guess;
// with neither available the symbol gets eight pins and a warning.
func Fallback(info easyeda.SymbolInfo, padNumbers []string) (*symbol.Symbol, []Warning) {
	var warnings []Warning

	if len(padNumbers) == 0 {
		count := PinCountFromPackage(info.Package)
		if count == 0 {
			count = defaultPinCount
			warnings = append(warnings, Warning{
				Shape:  "symbol",
				Reason: fmt.Sprintf("pin count unknown, defaulting to %d", defaultPinCount),
			})
		}
		padNumbers = make([]string, count)
		for i := range padNumbers {
			padNumbers[i] = strconv.Itoa(i + 1)
		}
	}
	count := len(padNumbers)

	out := &symbol.Symbol{
		Info: symbol.Info{
			Name:         info.Name,
			Prefix:       prefixOrDefault(info.Prefix),
			Footprint:    info.Package,
			Manufacturer: info.Manufacturer,
			Datasheet:    info.Datasheet,
			LCSCID:       info.LCSCID,
		},
	}

	// Side allocation: small parts go dual-inline; larger parts spread
	// over all four sides with roughly a tenth of the pins on top and
	// bottom each.
	var vertical, horizontal int
	if count <= defaultPinCount {
		vertical = (count + 1) / 2
		horizontal = 0
	} else {
		horizontal = max(2, count/10)
		vertical = (count - 2*horizontal) / 2
	}

	height := max(10.16, float64(vertical)*fallbackPinSpacing+10.16)
	width := max(12.7, float64(horizontal)*fallbackPinSpacing+10.16)
	if count > 50 {
		minDim := max(height, width) * 0.5
		height = max(height, minDim)
		width = max(width, minDim)
	}

	out.Rectangles = []symbol.Rectangle{{
		StartX: -width / 2,
		StartY: height / 2,
		EndX:   width / 2,
		EndY:   -height / 2,
	}}

	place := func(number string, orientation int, x, y float64) {
		out.Pins = append(out.Pins, symbol.Pin{
			Name:        "Pin_" + number,
			Number:      number,
			Type:        symbol.PinPassive,
			Style:       symbol.StyleLine,
			Length:      fallbackPinLength,
			Orientation: orientation,
			X:           x,
			Y:           y,
		})
	}

	idx := 0
	if count <= defaultPinCount {
		left := (count + 1) / 2
		for i := 0; i < left; i++ {
			place(padNumbers[idx], 180, -width/2-fallbackPinLength,
				height/2-float64(i+1)*fallbackPinSpacing-fallbackPinSpacing)
			idx++
		}
		for i := 0; idx < count; i++ {
			place(padNumbers[idx], 0, width/2+fallbackPinLength,
				height/2-float64(i+1)*fallbackPinSpacing-fallbackPinSpacing)
			idx++
		}
		return out, warnings
	}

	verticalSpan := float64(vertical-1) * fallbackPinSpacing
	startY := min(verticalSpan/2, height/2-5.08)

	for i := 0; i < vertical && idx < count; i++ {
		place(padNumbers[idx], 180, -width/2-fallbackPinLength, startY-float64(i)*fallbackPinSpacing)
		idx++
	}

	horizontalSpan := float64(horizontal-1) * fallbackPinSpacing
	startX := -min(horizontalSpan/2, width/2-5.08)
	for i := 0; i < horizontal && idx < count; i++ {
		place(padNumbers[idx], 270, startX+float64(i)*fallbackPinSpacing, -height/2-fallbackPinSpacing)
		idx++
	}

	for i := 0; i < vertical && idx < count; i++ {
		place(padNumbers[idx], 0, width/2+fallbackPinLength, startY-float64(i)*fallbackPinSpacing)
		idx++
	}

	// The top side takes whatever remains, including the rounding
	// leftovers of the side division.
	remaining := count - idx
	if remaining > 0 {
		horizontalSpan = float64(remaining-1) * fallbackPinSpacing
		startX = -min(horizontalSpan/2, width/2-5.08)
		for i := 0; idx < count; i++ {
			place(padNumbers[idx], 90, startX+float64(i)*fallbackPinSpacing, height/2-fallbackPinSpacing)
			idx++
		}
	}

	return out, warnings
}

func prefixOrDefault(prefix string) string {
	prefix = strings.ReplaceAll(prefix, "?", "")
	if prefix == "" {
		return "U"
	}
	return prefix
}

