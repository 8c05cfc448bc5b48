package errors

import (
	"log"
	"os"
)

// LogHandler is an ErrorHandler that writes diagnostics through the log package.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger receives the output. Nil logs to stderr.
	Logger *log.Logger
}

var stderrLogger = log.New(os.Stderr, "", log.LstdFlags)

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return stderrLogger
}

// HandleError logs a BindingError. Unknown properties are warnings; everything
// else is logged as an error.
func (h *LogHandler) HandleError(err *BindingError) {
	if err == nil {
		return
	}
	level := "error"
	if err.Kind == KindUnknownProperty {
		level = "warning"
	}
	l := h.logger()
	if h.Verbose {
		l.Printf("[bindingx %s] %s", level, err.Error())
		if err.StackTrace != "" {
			l.Printf("Stack trace:\n%s", err.StackTrace)
		}
		return
	}
	if err.Property != "" {
		l.Printf("[bindingx %s] %s: %v [%s]", level, err.Op, err.Err, err.Property)
		return
	}
	l.Printf("[bindingx %s] %s: %v", level, err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	if err.Op != "" {
		l.Printf("[bindingx panic] %s: %v", err.Op, err.Value)
	} else {
		l.Printf("[bindingx panic] %v", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		l.Printf("Stack trace:\n%s", err.StackTrace)
	}
}
