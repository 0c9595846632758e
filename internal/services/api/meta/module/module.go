// Package module wires meta into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "github.com/shivxmhere/ai-voice-detector/internal/modkit"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/httpkit"
	metahttp "github.com/shivxmhere/ai-voice-detector/internal/services/api/meta/http"
)

// Module implements the meta module; it owns the root-level health paths
type Module struct {
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// Options carry the descriptor strings the meta endpoints serve
type Options struct {
	ServiceName string
	Buildathon  string
}

// New constructs the meta module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix(""),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: o.ServiceName,
		Buildathon:  o.Buildathon,
		StartedAt:   time.Now().UTC(),
	}

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, d)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Ports returns the module port set; meta exposes none
func (m *Module) Ports() any { return nil }
