package bindings

import (
	"fmt"

	"github.com/go-drift/bindingx/pkg/errors"
	"github.com/go-drift/bindingx/pkg/platform"
	"github.com/go-drift/bindingx/pkg/units"
)

// ChannelName is the method channel native code uses to push binding updates.
const ChannelName = "drift/bindingx"

// ViewLookup resolves an element tag. It returns nil for unknown tags.
// Beware of returning a typed nil pointer wrapped in the interface.
type ViewLookup func(tag int) Element

// Server receives binding updates from native code on ChannelName and
// applies them with a Dispatcher on the UI thread.
//
// Wire format of "apply":
//
//	{"tag": 3, "property": "transform.translate",
//	 "value": {"pair": [10, 20]}, "config": {"perspective": 100}}
//
// The value object holds exactly one of "scalar", "pair" or "color". A
// value that holds none of them is dispatched as rejected, so the commit
// signal still fires. "applyBatch" takes {"updates": [...]} of the same
// objects and applies them in order.
type Server struct {
	dispatcher *Dispatcher
	lookup     ViewLookup
	ui         UIManager
	translator units.Translator
	channel    *platform.MethodChannel
}

// NewServer registers a Server on ChannelName.
func NewServer(d *Dispatcher, lookup ViewLookup, ui UIManager, tr units.Translator) *Server {
	if d == nil {
		d = defaultDispatcher
	}
	s := &Server{
		dispatcher: d,
		lookup:     lookup,
		ui:         ui,
		translator: tr,
		channel:    platform.NewMethodChannel(ChannelName),
	}
	s.channel.SetHandler(s.handleMethodCall)
	return s
}

type applyRequest struct {
	tag      int
	property string
	value    TickValue
	config   Config
}

func (s *Server) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "apply":
		req, err := parseApplyRequest(args)
		if err != nil {
			return nil, err
		}
		s.schedule([]applyRequest{req})
		return nil, nil
	case "applyBatch":
		m := parseMap(args)
		list, ok := m["updates"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: updates must be a list", platform.ErrInvalidArguments)
		}
		reqs := make([]applyRequest, 0, len(list))
		for i, item := range list {
			req, err := parseApplyRequest(item)
			if err != nil {
				return nil, fmt.Errorf("update %d: %w", i, err)
			}
			reqs = append(reqs, req)
		}
		s.schedule(reqs)
		return nil, nil
	default:
		return nil, platform.ErrMethodNotFound
	}
}

func (s *Server) schedule(reqs []applyRequest) {
	platform.DispatchOrRun(func() {
		for _, req := range reqs {
			s.apply(req)
		}
	})
}

func (s *Server) apply(req applyRequest) {
	var el Element
	if s.lookup != nil {
		el = s.lookup(req.tag)
	}
	if el == nil {
		errors.ReportTo(s.dispatcher.handler, &errors.BindingError{
			Op:       "bindings.Server.apply",
			Kind:     errors.KindPlatform,
			Channel:  ChannelName,
			Property: req.property,
			Tag:      req.tag,
			Err:      fmt.Errorf("no element for tag %d", req.tag),
		})
		return
	}
	s.dispatcher.ApplyValue(req.tag, el, req.property, req.value, s.translator, req.config, s.ui)
}

func parseApplyRequest(args any) (applyRequest, error) {
	m := parseMap(args)
	if m == nil {
		return applyRequest{}, &errors.ParseError{Channel: ChannelName, DataType: "apply", Got: args}
	}
	tag, ok := toInt(m["tag"])
	if !ok {
		return applyRequest{}, fmt.Errorf("%w: tag must be a number", platform.ErrInvalidArguments)
	}
	property, ok := m["property"].(string)
	if !ok || property == "" {
		return applyRequest{}, fmt.Errorf("%w: property must be a string", platform.ErrInvalidArguments)
	}
	return applyRequest{
		tag:      tag,
		property: property,
		value:    parseWireValue(m["value"]),
		config:   Config(parseMap(m["config"])),
	}, nil
}

// parseWireValue decodes the tagged value object. JSON has a single number
// type, so the tag, not the number, decides between scalar and color.
func parseWireValue(v any) TickValue {
	m := parseMap(v)
	if m == nil {
		return Rejected
	}
	if raw, ok := m["scalar"]; ok {
		if f, ok := toFloat64(raw); ok {
			return Scalar(f)
		}
		return Rejected
	}
	if raw, ok := m["pair"]; ok {
		if p := Coerce(raw); p.Kind() == KindPair {
			return p
		}
		return Rejected
	}
	if raw, ok := m["color"]; ok {
		f, ok := toFloat64(raw)
		if !ok || f != float64(int64(f)) {
			return Rejected
		}
		if c, ok := packedColor(int64(f)); ok {
			return IntColor(c)
		}
	}
	return Rejected
}
