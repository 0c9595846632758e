package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per-module middlewares.
// An empty prefix registers straight on r, for modules that own root-level paths
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	if prefix == "" || prefix == "/" {
		r.Group(func(sub Router) {
			if len(mw) > 0 {
				sub.Use(mw...)
			}
			mount(sub)
		})
		return
	}
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
