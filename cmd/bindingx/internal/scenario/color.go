package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/bindingx/pkg/graphics"
)

// ParseColor parses an SVG/CSS color name, #RRGGBB or #AARRGGBB.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		switch len(hex) {
		case 6:
			return graphics.Color(0xFF000000 | uint32(v)), nil
		case 8:
			return graphics.Color(uint32(v)), nil
		default:
			return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
		}
	}
	name := strings.ToLower(s)
	if name == "transparent" {
		return graphics.ColorTransparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return graphics.FromColor(c), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
