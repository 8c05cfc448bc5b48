// Package bindings applies evaluated animation values to native elements.
//
// An expression engine evaluates bindings once per animation frame and hands
// each result to a [Dispatcher] together with the target element, the dotted
// property path it drives and a small per-binding configuration:
//
//	d := bindings.New()
//	d.Apply(tag, view, "transform.rotate", 45.0, units.Density(scale),
//	    bindings.Config{"perspective": 100, "transformOrigin": "50% 50%"}, uiManager)
//
// # Values
//
// Incoming values are decoded once by [Coerce] into a [TickValue]: a scalar,
// an ordered pair of scalars or a packed integer color. Values of the wrong
// shape for a property are dropped without a diagnostic, because a single
// malformed frame must not interrupt the animation.
//
// # Properties
//
// The set of animatable properties is fixed (see [Properties]). Paths are
// case sensitive. An unknown path is reported once per call through the
// errors package and otherwise ignored.
//
// # Commit signal
//
// After every Apply, whether or not anything was written, the dispatcher
// calls [UIManager.NotifyNoDeltaUpdate] exactly once for the tag so the host
// can keep its bookkeeping in sync without a full layout pass.
//
// # Threading
//
// Apply runs synchronously on the caller's goroutine, which should be the
// goroutine that owns the element tree. A Dispatcher holds no mutable state
// and may be shared. [Server] accepts updates from native code over a
// platform channel and marshals them with platform.Dispatch.
package bindings
