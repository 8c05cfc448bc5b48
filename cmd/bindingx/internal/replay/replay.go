// Package replay drives a scenario through the binding dispatcher frame by
// frame against in-memory views.
package replay

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/go-drift/bindingx/cmd/bindingx/internal/scenario"
	"github.com/go-drift/bindingx/pkg/animation"
	"github.com/go-drift/bindingx/pkg/bindings"
	"github.com/go-drift/bindingx/pkg/errors"
	"github.com/go-drift/bindingx/pkg/memview"
	"github.com/go-drift/bindingx/pkg/telemetry"
	"github.com/go-drift/bindingx/pkg/units"
)

// Options configure a run.
type Options struct {
	// FPS is the frame rate. Non-positive means 60.
	FPS int
	// Density converts scenario sizes to pixels and is the default display
	// density of views that do not set one.
	Density float64
	// Trace, when set, receives every property write per frame.
	Trace io.Writer
}

// ViewResult is the final state of one view.
type ViewResult struct {
	Tag     int
	State   memview.State
	Commits int
}

// Result summarizes a run.
type Result struct {
	Frames  int
	Views   []ViewResult
	Commits int
	Errors  []*errors.BindingError
	Panics  []*errors.PanicError
	Counts  []telemetry.Count
}

// Run replays s. The animation clock is replaced for the duration of the
// run, so runs must not overlap.
func Run(ctx context.Context, s *scenario.Scenario, opts Options) (*Result, error) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	observer, err := telemetry.NewObserver(mp)
	if err != nil {
		return nil, fmt.Errorf("create observer: %w", err)
	}

	density := opts.Density
	if density <= 0 {
		density = 1
	}
	diag := &memview.Diagnostics{}
	ui := memview.NewUIManager()
	d := bindings.New(
		bindings.WithErrorHandler(diag),
		bindings.WithObserver(observer),
	)
	tr := units.Density(density)

	views := make(map[int]*memview.View, len(s.Views))
	for _, v := range s.Views {
		vd := v.Density
		if vd <= 0 {
			vd = density
		}
		views[v.Tag] = memview.New(memview.Options{
			Size:       v.Size(),
			Density:    float32(vd),
			Scrollable: v.Scrollable,
			Text:       v.Text,
		})
	}
	lookup := func(tag int) bindings.Element {
		if v, ok := views[tag]; ok {
			return v
		}
		return nil
	}

	frames := 0
	frame := func(elapsed time.Duration) {
		for _, track := range s.Tracks {
			d.Apply(track.Tag, lookup(track.Tag), track.Property, track.Sample(elapsed), tr, track.Config, ui)
		}
		if opts.Trace != nil {
			trace(opts.Trace, frames, elapsed, views)
		}
		frames++
	}

	clock := animation.NewFrameClock(opts.FPS)
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	ctrl := animation.NewController(s.Duration.Std())
	defer ctrl.Dispose()
	ctrl.AddListener(func(elapsed time.Duration, _ float64) {
		frame(min(elapsed, s.Duration.Std()))
	})

	frame(0)
	if s.Duration > 0 {
		ctrl.Forward()
	}
	for ctrl.IsRunning() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clock.Step()
		animation.StepTickers()
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	res := &Result{
		Frames:  frames,
		Commits: ui.Total(),
		Errors:  diag.Errors(),
		Panics:  diag.Panics(),
		Counts:  telemetry.Counts(rm),
	}
	for tag, v := range views {
		res.Views = append(res.Views, ViewResult{Tag: tag, State: v.State(), Commits: ui.Commits(tag)})
	}
	slices.SortFunc(res.Views, func(a, b ViewResult) int { return a.Tag - b.Tag })
	return res, nil
}

func trace(w io.Writer, frame int, elapsed time.Duration, views map[int]*memview.View) {
	tags := make([]int, 0, len(views))
	for tag := range views {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		v := views[tag]
		for _, write := range v.Writes() {
			fmt.Fprintf(w, "frame %d %v tag %d: %s\n", frame, elapsed, tag, write)
		}
		v.ResetWrites()
	}
}
