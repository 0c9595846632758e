// Package module wires detect into the API using modkit
package module

import (
	"net/http"

	modkit "github.com/shivxmhere/ai-voice-detector/internal/modkit"
	"github.com/shivxmhere/ai-voice-detector/internal/modkit/httpkit"
	dethttp "github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/http"
	detsvc "github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/service"
)

// Module implements the detect module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)

	svc detsvc.Service
}

// New constructs the detect module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
		modkit.WithPrefix("/detect"),
	}, opts...)...)

	svc := detsvc.New(deps.Scorer)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = Ports{Detector: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dethttp.Register(r, m.svc)
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

// Ports returns the module port set
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
