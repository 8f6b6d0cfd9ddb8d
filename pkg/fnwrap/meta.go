package fnwrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Placeholder stands in for the opaque wrapped callable when displaying
// a wrapper that has neither a name nor a label.
const Placeholder = "<fn>"

// Meta is the metadata carried by a wrapper. Copies of a wrapper carry
// the same Meta, so they report the same ID.
type Meta struct {
	id        uuid.UUID
	createdAt time.Time
	name      mo.Option[string]
	label     string
}

func NewMeta(name mo.Option[string]) Meta {
	return Meta{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		name:      name,
	}
}

// Composite returns metadata for a wrapper built from other wrappers.
// It gets a fresh ID, no name, and a label describing how it was built.
func Composite(op string, parts ...Meta) Meta {
	m := NewMeta(mo.None[string]())
	if len(parts) == 0 {
		m.label = op
		return m
	}

	args := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		args = append(args, p.Token())
	}
	m.label = fmt.Sprintf("%s.%s(%s)", parts[0].Token(), op, strings.Join(args, ", "))
	return m
}

func (m Meta) ID() uuid.UUID {
	return m.id
}

// CreatedAt time creation (UTC)
func (m Meta) CreatedAt() time.Time {
	return m.createdAt
}

func (m Meta) Name() mo.Option[string] {
	return m.name
}

// WithName returns a copy of m carrying name. The ID is kept.
func (m Meta) WithName(name string) Meta {
	m.name = mo.Some(name)
	return m
}

// WithoutName returns a copy of m with the name cleared.
func (m Meta) WithoutName() Meta {
	m.name = mo.None[string]()
	return m
}

// Label is the generated description of a composite, empty otherwise.
// It is for display only.
func (m Meta) Label() string {
	return m.label
}

// Token is the short form used when m appears inside another label.
func (m Meta) Token() string {
	if name, ok := m.name.Get(); ok {
		return name
	}
	if m.label != "" {
		return m.label
	}
	return Placeholder
}

// Describe renders a wrapper as Kind(token).
func (m Meta) Describe(kind string) string {
	return kind + "(" + m.Token() + ")"
}

// Described is implemented by every wrapper in this module.
type Described interface {
	Meta() Meta
}

// MetaOf returns v's metadata, or fresh unnamed metadata when v is a bare
// func adapter or a foreign implementation of a capability interface.
func MetaOf(v any) Meta {
	if d, ok := v.(Described); ok {
		return d.Meta()
	}
	return NewMeta(mo.None[string]())
}
