package bindings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/bindingx/pkg/bindings"
	"github.com/go-drift/bindingx/pkg/errors"
	"github.com/go-drift/bindingx/pkg/graphics"
	"github.com/go-drift/bindingx/pkg/memview"
	"github.com/go-drift/bindingx/pkg/platform"
)

type serverHarness struct {
	views map[int]*memview.View
	ui    *memview.UIManager
	diag  *memview.Diagnostics
}

func newServerHarness(t *testing.T) *serverHarness {
	t.Helper()
	platform.SetupTestBridge(t.Cleanup)
	h := &serverHarness{
		views: map[int]*memview.View{
			1: memview.New(memview.Options{Size: graphics.Size{Width: 100, Height: 100}, Density: 1}),
			2: memview.New(memview.Options{Scrollable: true}),
		},
		ui:   memview.NewUIManager(),
		diag: &memview.Diagnostics{},
	}
	errors.SetHandler(h.diag)
	t.Cleanup(func() { errors.SetHandler(nil) })

	lookup := func(tag int) bindings.Element {
		if v, ok := h.views[tag]; ok {
			return v
		}
		return nil
	}
	bindings.NewServer(bindings.New(bindings.WithErrorHandler(h.diag)), lookup, h.ui, nil)
	return h
}

func call(t *testing.T, method, payload string) error {
	t.Helper()
	_, err := platform.HandleMethodCall(bindings.ChannelName, method, []byte(payload))
	return err
}

func TestServer_Apply(t *testing.T) {
	h := newServerHarness(t)

	require.NoError(t, call(t, "apply", `{"tag":1,"property":"transform.translate","value":{"pair":[10,20]}}`))
	s := h.views[1].State()
	assert.Equal(t, float32(10), s.TranslationX)
	assert.Equal(t, float32(20), s.TranslationY)
	assert.Equal(t, 1, h.ui.Commits(1))
}

func TestServer_WireValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		value string
		path  string
		want  []memview.Write
	}{
		{"scalar", `{"scalar":0.25}`, "opacity", []memview.Write{{Op: "SetAlpha", Value: float32(0.25)}}},
		{"integral scalar", `{"scalar":1}`, "opacity", []memview.Write{{Op: "SetAlpha", Value: float32(1)}}},
		{"color", `{"color":4294901760}`, "background-color", []memview.Write{{Op: "SetBackgroundColor", Value: graphics.ColorRed}}},
		{"signed color", `{"color":-16711936}`, "background-color", []memview.Write{{Op: "SetBackgroundColor", Value: graphics.Color(0xFF00FF00)}}},
		{"fractional color", `{"color":1.5}`, "background-color", []memview.Write{}},
		{"color out of range", `{"color":4294967296}`, "background-color", []memview.Write{}},
		{"short pair", `{"pair":[1]}`, "transform.translate", []memview.Write{}},
		{"string scalar", `{"scalar":"1"}`, "opacity", []memview.Write{}},
		{"empty value", `{}`, "opacity", []memview.Write{}},
		{"bare number", `0.5`, "opacity", []memview.Write{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newServerHarness(t)
			err := call(t, "apply", `{"tag":1,"property":"`+tt.path+`","value":`+tt.value+`}`)
			require.NoError(t, err)
			assert.Equal(t, tt.want, append([]memview.Write{}, h.views[1].Writes()...))
			assert.Equal(t, 1, h.ui.Commits(1))
		})
	}
}

func TestServer_ApplyWithConfig(t *testing.T) {
	h := newServerHarness(t)

	err := call(t, "apply", `{"tag":1,"property":"transform.rotate","value":{"scalar":90},
		"config":{"transformOrigin":"left top","perspective":10}}`)
	require.NoError(t, err)

	s := h.views[1].State()
	assert.True(t, s.PivotSet)
	assert.Equal(t, float32(90), s.Rotation)
	assert.NotZero(t, s.CameraDistance)
}

func TestServer_ApplyBatch(t *testing.T) {
	h := newServerHarness(t)

	err := call(t, "applyBatch", `{"updates":[
		{"tag":1,"property":"opacity","value":{"scalar":0.5}},
		{"tag":2,"property":"scroll.contentOffsetY","value":{"scalar":40}},
		{"tag":1,"property":"made.up.path","value":{"scalar":1}}
	]}`)
	require.NoError(t, err)

	assert.Equal(t, float32(0.5), h.views[1].State().Alpha)
	assert.Equal(t, 40, h.views[2].State().ScrollY)
	assert.Equal(t, 2, h.ui.Commits(1))
	assert.Equal(t, 1, h.ui.Commits(2))
	require.Len(t, h.diag.Errors(), 1)
	assert.Equal(t, errors.KindUnknownProperty, h.diag.Errors()[0].Kind)
}

func TestServer_UnknownTag(t *testing.T) {
	h := newServerHarness(t)

	require.NoError(t, call(t, "apply", `{"tag":99,"property":"opacity","value":{"scalar":1}}`))
	assert.Equal(t, 0, h.ui.Total())
	require.Len(t, h.diag.Errors(), 1)
	assert.Equal(t, errors.KindPlatform, h.diag.Errors()[0].Kind)
	assert.Equal(t, 99, h.diag.Errors()[0].Tag)
}

func TestServer_InvalidArguments(t *testing.T) {
	h := newServerHarness(t)

	tests := []struct {
		name    string
		method  string
		payload string
	}{
		{"missing tag", "apply", `{"property":"opacity"}`},
		{"missing property", "apply", `{"tag":1}`},
		{"updates not a list", "applyBatch", `{"updates":{}}`},
		{"bad batch item", "applyBatch", `{"updates":[{"tag":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, call(t, tt.method, tt.payload), platform.ErrInvalidArguments)
		})
	}
	assert.Equal(t, 0, h.ui.Total())

	var parseErr *errors.ParseError
	assert.ErrorAs(t, call(t, "apply", `[1,2]`), &parseErr)
	assert.ErrorIs(t, call(t, "reset", `{}`), platform.ErrMethodNotFound)
}

func TestServer_SchedulesOnUIThread(t *testing.T) {
	h := newServerHarness(t)
	var queued []func()
	platform.RegisterDispatch(func(cb func()) { queued = append(queued, cb) })

	require.NoError(t, call(t, "apply", `{"tag":1,"property":"opacity","value":{"scalar":0.1}}`))
	assert.Equal(t, float32(1), h.views[1].State().Alpha)

	require.Len(t, queued, 1)
	queued[0]()
	assert.Equal(t, float32(0.1), h.views[1].State().Alpha)
}

func TestServer_NativeViews(t *testing.T) {
	bridge := platform.SetupTestBridge(t.Cleanup)
	views := platform.NewNativeViewRegistry()
	views.Register(4, platform.ViewOptions{Size: graphics.Size{Width: 50, Height: 50}, Density: 2})
	bindings.NewServer(nil, func(tag int) bindings.Element {
		if v := views.View(tag); v != nil {
			return v
		}
		return nil
	}, views, nil)

	require.NoError(t, call(t, "apply", `{"tag":4,"property":"opacity","value":{"scalar":0.5}}`))

	calls := bridge.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "commit", calls[0].Method)
	args := calls[0].Args.(map[string]any)
	assert.Equal(t, []any{map[string]any{"op": "setAlpha", "value": 0.5}}, args["mutations"])
}
