package svgraster

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errColorFormat = errors.New("invalid color format")

// ParseColor parses an SVG color token: a keyword ("red"),
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" or "rgba(r, g, b, a)".
// "none" and "transparent" return a nil color.
func ParseColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "none", "transparent":
		return nil, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHex(v[1:])
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		return parseFunctional(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unsupported color %q", v)
}

func parseHex(h string) (color.Color, error) {
	switch len(h) {
	case 3: // expand to rrggbb
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return nil, errColorFormat
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, errColorFormat
	}
	if len(h) == 6 {
		n = n<<8 | 0xff
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// parses "rgb(r, g, b)" and "rgba(r, g, b, a)",
// where channels are integers or percentages and alpha is in [0, 1]
func parseFunctional(v string) (color.Color, error) {
	lp, rp := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if rp < lp {
		return nil, errColorFormat
	}
	fields := strings.FieldsFunc(v[lp+1:rp], func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 3 && len(fields) != 4 {
		return nil, errColorFormat
	}
	var channels [4]uint8
	channels[3] = 0xff
	for i, f := range fields {
		var val float64
		var err error
		switch {
		case strings.HasSuffix(f, "%"):
			val, err = strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			val = val * 255 / 100
		case i == 3:
			val, err = strconv.ParseFloat(f, 64)
			val *= 255
		default:
			val, err = strconv.ParseFloat(f, 64)
		}
		if err != nil {
			return nil, errColorFormat
		}
		channels[i] = clamp(val)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
