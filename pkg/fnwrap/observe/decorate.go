package observe

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/consumer"
	"github.com/ib-77/fnwrap/pkg/fnwrap/function"
	"github.com/ib-77/fnwrap/pkg/fnwrap/supplier"
)

// Function returns a Function that records every call to f on r. A panic in
// f is recorded and then continues unchanged. The result keeps f's name.
func Function[T, R any](r fnwrap.Recorder, f fnwrap.Applier[T, R]) function.Function[T, R] {
	who, opts := identify(f, "Function")
	return function.New(func(t T) R {
		defer track(r, who)()
		return f.Apply(t)
	}, opts...)
}

func Consumer[T any](r fnwrap.Recorder, c fnwrap.Acceptor[T]) consumer.Consumer[T] {
	who, opts := identify(c, "Consumer")
	return consumer.New(func(t T) {
		defer track(r, who)()
		c.Accept(t)
	}, opts...)
}

func Supplier[T any](r fnwrap.Recorder, s fnwrap.Provider[T]) supplier.Supplier[T] {
	who, opts := identify(s, "Supplier")
	return supplier.New(func() T {
		defer track(r, who)()
		return s.Get()
	}, opts...)
}

// identify names the wrapper in metrics: its name when it has one, its kind
// otherwise.
func identify(v any, kind string) (string, []fnwrap.Option) {
	name, ok := fnwrap.MetaOf(v).Name().Get()
	if !ok {
		return kind, nil
	}
	return name, []fnwrap.Option{fnwrap.WithName(name)}
}

// track records the call and returns the func to defer for panic counting.
func track(r fnwrap.Recorder, who string) func() {
	r.RecordCall(who)
	return func() {
		if v := recover(); v != nil {
			r.RecordPanic(who, v)
			panic(v)
		}
	}
}
