package errors

import (
	"bytes"
	stderrors "errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorString(t *testing.T) {
	err := &BindingError{
		Op:       "bindings.Apply",
		Kind:     KindUnknownProperty,
		Property: "made.up.path",
		Tag:      7,
		Err:      ErrUnknownProperty,
	}
	assert.Equal(t, `bindings.Apply [unknown-property] property="made.up.path" tag=7: unknown property`, err.Error())
	assert.True(t, stderrors.Is(err, ErrUnknownProperty))
}

func TestBindingErrorWithChannel(t *testing.T) {
	err := &BindingError{
		Op:      "bindings.Server",
		Kind:    KindParsing,
		Channel: "drift/bindingx",
		Err:     &ParseError{Channel: "drift/bindingx", DataType: "applyArgs", Got: nil},
	}
	assert.Contains(t, err.Error(), "channel=drift/bindingx")
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindUnknownProperty, "unknown-property"},
		{KindPlatform, "platform"},
		{KindParsing, "parsing"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
	assert.Equal(t, "panic in bindings.Apply: boom", (&PanicError{Op: "bindings.Apply", Value: "boom"}).Error())
}

func TestUnknownProperty(t *testing.T) {
	err := UnknownProperty("bindings.Apply", 3, "transform.skew")
	assert.Equal(t, KindUnknownProperty, err.Kind)
	assert.Equal(t, "transform.skew", err.Property)
	assert.Equal(t, 3, err.Tag)
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestReport(t *testing.T) {
	var captured *BindingError
	withHandler(t, &testHandler{onError: func(err *BindingError) { captured = err }})

	Report(UnknownProperty("test.op", 1, "nope"))

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestReportNil(t *testing.T) {
	called := false
	withHandler(t, &testHandler{onError: func(*BindingError) { called = true }})
	Report(nil)
	assert.False(t, called)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	withHandler(t, &testHandler{onPanic: func(err *PanicError) { captured = err }})

	var got any
	func() {
		defer Recover(nil, "test.recover", func(r any) { got = r })
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "intentional test panic", got)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestRecoverToHandler(t *testing.T) {
	globalCalled := false
	withHandler(t, &testHandler{onPanic: func(*PanicError) { globalCalled = true }})

	var captured *PanicError
	local := &testHandler{onPanic: func(err *PanicError) { captured = err }}
	func() {
		defer Recover(local, "test.local", nil)
		panic(42)
	}()

	require.NotNil(t, captured)
	assert.Equal(t, 42, captured.Value)
	assert.False(t, globalCalled)
}

func TestRecoverWithoutPanic(t *testing.T) {
	called := false
	withHandler(t, &testHandler{onPanic: func(*PanicError) { called = true }})
	func() {
		defer Recover(nil, "test.quiet", func(any) { called = true })
	}()
	assert.False(t, called)
}

func TestReportTo(t *testing.T) {
	globalCalled := false
	withHandler(t, &testHandler{onError: func(*BindingError) { globalCalled = true }})

	var captured *BindingError
	ReportTo(&testHandler{onError: func(err *BindingError) { captured = err }}, UnknownProperty("test.op", 2, "nope"))

	require.NotNil(t, captured)
	assert.False(t, captured.Timestamp.IsZero())
	assert.False(t, globalCalled)
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	require.NotEmpty(t, stack)
	assert.Contains(t, stack, "testing")
}

func TestSetHandlerNil(t *testing.T) {
	old := getHandler()
	t.Cleanup(func() { SetHandler(old) })

	SetHandler(nil)
	_, ok := getHandler().(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should install a LogHandler")
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: log.New(&buf, "", 0)}

	h.HandleError(UnknownProperty("bindings.Apply", 1, "made.up.path"))
	assert.Equal(t, "[bindingx warning] bindings.Apply: unknown property [made.up.path]\n", buf.String())

	buf.Reset()
	h.HandleError(&BindingError{Op: "platform.invoke", Kind: KindPlatform, Err: stderrors.New("closed")})
	assert.Equal(t, "[bindingx error] platform.invoke: closed\n", buf.String())

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "bindings.Apply", Value: "boom", Timestamp: time.Now()})
	assert.Equal(t, "[bindingx panic] bindings.Apply: boom\n", buf.String())
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Logger: log.New(&buf, "", 0)}
	h.HandleError(&BindingError{Op: "op", Kind: KindConfig, Err: stderrors.New("bad"), StackTrace: "frame"})
	assert.Contains(t, buf.String(), "op [config]: bad")
	assert.Contains(t, buf.String(), "Stack trace:\nframe")
}

type testHandler struct {
	onError func(*BindingError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *BindingError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func withHandler(t *testing.T, h ErrorHandler) {
	t.Helper()
	old := getHandler()
	SetHandler(h)
	t.Cleanup(func() { SetHandler(old) })
}
