package memview

import (
	"sync"

	"github.com/go-drift/bindingx/pkg/errors"
)

// UIManager counts no-delta commits per tag.
type UIManager struct {
	mu      sync.Mutex
	commits map[int]int
	order   []int
}

// NewUIManager returns an empty UIManager.
func NewUIManager() *UIManager {
	return &UIManager{commits: make(map[int]int)}
}

// NotifyNoDeltaUpdate records a commit for tag.
func (m *UIManager) NotifyNoDeltaUpdate(tag int) {
	m.mu.Lock()
	m.commits[tag]++
	m.order = append(m.order, tag)
	m.mu.Unlock()
}

// Commits returns the number of commits recorded for tag.
func (m *UIManager) Commits(tag int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits[tag]
}

// Total returns the number of commits across all tags.
func (m *UIManager) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// Diagnostics is an errors.ErrorHandler that keeps what it receives.
type Diagnostics struct {
	mu     sync.Mutex
	errs   []*errors.BindingError
	panics []*errors.PanicError
}

// HandleError records err.
func (d *Diagnostics) HandleError(err *errors.BindingError) {
	d.mu.Lock()
	d.errs = append(d.errs, err)
	d.mu.Unlock()
}

// HandlePanic records err.
func (d *Diagnostics) HandlePanic(err *errors.PanicError) {
	d.mu.Lock()
	d.panics = append(d.panics, err)
	d.mu.Unlock()
}

// Errors returns the recorded errors.
func (d *Diagnostics) Errors() []*errors.BindingError {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*errors.BindingError(nil), d.errs...)
}

// Panics returns the recorded panics.
func (d *Diagnostics) Panics() []*errors.PanicError {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*errors.PanicError(nil), d.panics...)
}
