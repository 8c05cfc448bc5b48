package platform

import (
	"encoding/json"
	"sync"
)

// RecordingBridge is a NativeBridge that records every call and answers
// with a JSON null. It is meant for tests.
type RecordingBridge struct {
	mu    sync.Mutex
	calls []BridgeCall
	// Err, when set, is returned from every InvokeMethod.
	Err error
}

// BridgeCall is one recorded native invocation with JSON-decoded args.
type BridgeCall struct {
	Channel string
	Method  string
	Args    any
}

// InvokeMethod records the call.
func (b *RecordingBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args any
	if len(argsData) > 0 {
		if err := json.Unmarshal(argsData, &args); err != nil {
			return nil, err
		}
	}
	b.mu.Lock()
	b.calls = append(b.calls, BridgeCall{Channel: channel, Method: method, Args: args})
	err := b.Err
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Encode(nil)
}

// Calls returns a copy of the recorded calls.
func (b *RecordingBridge) Calls() []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BridgeCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// SetupTestBridge installs a RecordingBridge and a synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	bridge := platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) *RecordingBridge {
	bridge := &RecordingBridge{}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return bridge
}
