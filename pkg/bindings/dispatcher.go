package bindings

import (
	"github.com/go-drift/bindingx/pkg/errors"
	"github.com/go-drift/bindingx/pkg/units"
)

const opApply = "bindings.Apply"

// Observer is told the outcome of every Apply call. It runs on the
// caller's goroutine after the commit signal and must not block.
type Observer interface {
	Observe(tag int, path string, outcome Outcome)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(tag int, path string, outcome Outcome)

// Observe calls f.
func (f ObserverFunc) Observe(tag int, path string, outcome Outcome) {
	f(tag, path, outcome)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithErrorHandler sends diagnostics to h instead of the global errors handler.
func WithErrorHandler(h errors.ErrorHandler) Option {
	return func(d *Dispatcher) { d.handler = h }
}

// WithPerspectiveNormalizer replaces units.NormalizePerspective.
func WithPerspectiveNormalizer(n units.PerspectiveNormalizer) Option {
	return func(d *Dispatcher) { d.normalize = n }
}

// WithOriginParser replaces ParseTransformOrigin.
func WithOriginParser(p OriginParser) Option {
	return func(d *Dispatcher) { d.parseOrigin = p }
}

// WithObserver registers an Observer.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// Dispatcher routes tick values to property updaters. It is immutable once
// built and safe for concurrent use, though each element should only be
// touched from the goroutine that owns it.
type Dispatcher struct {
	handler     errors.ErrorHandler
	normalize   units.PerspectiveNormalizer
	parseOrigin OriginParser
	observer    Observer
}

// New returns a Dispatcher configured by opts.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		normalize:   units.NormalizePerspective,
		parseOrigin: ParseTransformOrigin,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDispatcher = New()

// Apply runs the default dispatcher. See Dispatcher.Apply.
func Apply(tag int, el Element, path string, raw any, tr units.Translator, cfg Config, ui UIManager) {
	defaultDispatcher.Apply(tag, el, path, raw, tr, cfg, ui)
}

// Updater returns the updater registered for path, or a no-op updater.
// It never returns nil.
func (d *Dispatcher) Updater(path string) Updater {
	if up, ok := updaters[Property(path)]; ok {
		return up
	}
	return nopUpdater
}

// Apply coerces raw and writes it to the property named by path on el,
// then signals ui once for tag.
//
// Apply never fails. Unknown paths are reported as diagnostics, values of
// the wrong shape and elements lacking the required capability are
// ignored, and a panicking element is recovered and reported. In every
// case ui.NotifyNoDeltaUpdate(tag) is called exactly once.
func (d *Dispatcher) Apply(tag int, el Element, path string, raw any, tr units.Translator, cfg Config, ui UIManager) {
	d.ApplyValue(tag, el, path, Coerce(raw), tr, cfg, ui)
}

// ApplyValue is Apply for an already decoded value.
func (d *Dispatcher) ApplyValue(tag int, el Element, path string, v TickValue, tr units.Translator, cfg Config, ui UIManager) {
	outcome := OutcomeUnknownProperty
	if up, ok := updaters[Property(path)]; !ok {
		errors.ReportTo(d.handler, errors.UnknownProperty(opApply, tag, path))
	} else if el == nil {
		outcome = OutcomeUnsupported
	} else {
		outcome = d.invoke(up, Update{
			Tag:         tag,
			Element:     el,
			Value:       v,
			Translator:  tr,
			Config:      cfg,
			UI:          ui,
			normalize:   d.normalize,
			parseOrigin: d.parseOrigin,
		})
	}

	if ui != nil {
		ui.NotifyNoDeltaUpdate(tag)
	}
	if d.observer != nil {
		d.observer.Observe(tag, path, outcome)
	}
}

func (d *Dispatcher) invoke(up Updater, u Update) (outcome Outcome) {
	defer errors.Recover(d.handler, opApply, func(any) { outcome = OutcomePanicked })
	return up.Update(u)
}
