package bindings_test

import (
	"fmt"

	"github.com/go-drift/bindingx/pkg/bindings"
	"github.com/go-drift/bindingx/pkg/graphics"
	"github.com/go-drift/bindingx/pkg/memview"
	"github.com/go-drift/bindingx/pkg/units"
)

func ExampleDispatcher_Apply() {
	view := memview.New(memview.Options{Size: graphics.Size{Width: 200, Height: 100}, Density: 2})
	ui := memview.NewUIManager()
	d := bindings.New()

	d.Apply(1, view, "transform.translate", []any{10.0, 20.0}, units.Density(2), nil, ui)
	d.Apply(1, view, "transform.rotate", 45.0, nil, bindings.Config{"perspective": 0}, ui)

	for _, w := range view.Writes() {
		fmt.Println(w)
	}
	fmt.Println("commits:", ui.Commits(1))
	// Output:
	// SetTranslationX(20)
	// SetTranslationY(40)
	// SetRotation(45)
	// commits: 2
}

func ExampleCoerce() {
	fmt.Println(bindings.Coerce(0.5))
	fmt.Println(bindings.Coerce([]any{1.0, 2.0}))
	fmt.Println(bindings.Coerce(uint32(0xFFFF0000)))
	fmt.Println(bindings.Coerce("0.5"))
	// Output:
	// scalar(0.5)
	// pair(1, 2)
	// color(#FFFF0000)
	// rejected
}
