package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack          = RGB{0, 0, 0}
	RGBCornflowerBlue = RGB{100, 149, 237}
)

// namedColors covers the CSS names used by level background hints
var namedColors = map[string]RGB{
	"black":          RGBBlack,
	"white":          {255, 255, 255},
	"cornflowerblue": RGBCornflowerBlue,
	"skyblue":        {135, 206, 235},
	"midnightblue":   {25, 25, 112},
	"darkslategray":  {47, 79, 79},
	"forestgreen":    {34, 139, 34},
}

// ParseColor accepts "#rrggbb" or a CSS color name
func ParseColor(s string) (RGB, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[strings.ReplaceAll(s, "_", "")]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, err)
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	return RGB{}, fmt.Errorf("color %q: unknown name or format", s)
}
