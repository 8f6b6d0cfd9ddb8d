package observe

import (
	"context"
	"fmt"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	CallsCounter    = "fnwrap.calls"
	PanicsCounter   = "fnwrap.panics"
	PoisonedCounter = "fnwrap.poisoned"

	// WrapperKey is the attribute carrying the wrapper name.
	WrapperKey = attribute.Key("wrapper")
)

// Instruments holds the counters fed by wrapper events.
type Instruments struct {
	calls    metric.Int64Counter
	panics   metric.Int64Counter
	poisoned metric.Int64Counter
}

var _ fnwrap.Recorder = (*Instruments)(nil)

func NewInstruments(meter metric.Meter) (*Instruments, error) {
	calls, err := meter.Int64Counter(CallsCounter, metric.WithDescription("count of wrapper invocations"))
	if err != nil {
		return nil, fmt.Errorf("create calls counter: %w", err)
	}
	panics, err := meter.Int64Counter(PanicsCounter, metric.WithDescription("count of panics raised by wrapped callables"))
	if err != nil {
		return nil, fmt.Errorf("create panics counter: %w", err)
	}
	poisoned, err := meter.Int64Counter(PoisonedCounter, metric.WithDescription("count of sync wrappers poisoned by a panic"))
	if err != nil {
		return nil, fmt.Errorf("create poisoned counter: %w", err)
	}
	return &Instruments{calls: calls, panics: panics, poisoned: poisoned}, nil
}

func (i *Instruments) RecordCall(wrapper string) {
	i.calls.Add(context.Background(), 1, attrs(wrapper))
}

func (i *Instruments) RecordPanic(wrapper string, _ any) {
	i.panics.Add(context.Background(), 1, attrs(wrapper))
}

func (i *Instruments) RecordPoison(wrapper string) {
	i.poisoned.Add(context.Background(), 1, attrs(wrapper))
}

func attrs(wrapper string) metric.AddOption {
	return metric.WithAttributes(WrapperKey.String(wrapper))
}
