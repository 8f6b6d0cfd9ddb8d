package fnwrap

import (
	"log/slog"

	"github.com/samber/mo"
)

// Recorder receives invocation events from wrappers. The observe package
// provides an OpenTelemetry implementation.
type Recorder interface {
	RecordCall(wrapper string)
	RecordPanic(wrapper string, value any)
	RecordPoison(wrapper string)
}

type Options struct {
	Name     mo.Option[string]
	Logger   *slog.Logger
	Recorder Recorder
}

type Option func(*Options)

func WithName(name string) Option {
	return func(o *Options) {
		o.Name = mo.Some(name)
	}
}

// WithLogger overrides the package logger for one wrapper.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{Name: mo.None[string]()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Log returns the wrapper logger, falling back to the package logger.
func (o Options) Log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}
