package cmd

import (
	"fmt"

	"github.com/go-drift/bindingx/pkg/bindings"
)

func init() {
	RegisterCommand(&Command{
		Name:  "props",
		Short: "List bindable properties",
		Long: `List every property path the dispatcher recognizes and the value
shape it accepts. Any other path is reported as unknown and ignored.`,
		Usage: "bindingx props",
		Run:   runProps,
	})
}

// propertyShapes documents the accepted value shape per path.
var propertyShapes = map[bindings.Property]string{
	bindings.Opacity:         "scalar",
	bindings.Translate:       "pair",
	bindings.TranslateX:      "scalar",
	bindings.TranslateY:      "scalar",
	bindings.Scale:           "scalar or pair",
	bindings.ScaleX:          "scalar",
	bindings.ScaleY:          "scalar",
	bindings.Rotate:          "scalar",
	bindings.RotateZ:         "scalar",
	bindings.RotateX:         "scalar",
	bindings.RotateY:         "scalar",
	bindings.BackgroundColor: "color",
	bindings.TextColor:       "color (text views)",
	bindings.ContentOffset:   "scalar or pair (scroll views)",
	bindings.ContentOffsetX:  "scalar (scroll views)",
	bindings.ContentOffsetY:  "scalar (scroll views)",
	bindings.Width:           "scalar",
	bindings.Height:          "scalar",
}

func runProps(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("props takes no arguments")
	}
	for _, p := range bindings.Properties() {
		fmt.Fprintf(stdout, "  %-24s %s\n", p, propertyShapes[p])
	}
	return nil
}
