// Package api provides the HTTP API for the application
package api

import (
	"trendlens/internal/platform/config"
	"trendlens/internal/platform/logger"
	phttp "trendlens/internal/platform/net/http"
	"trendlens/internal/platform/store"

	"trendlens/internal/modkit"
	"trendlens/internal/modkit/httpkit"
	"trendlens/internal/modkit/module"
	"trendlens/internal/modkit/swaggerkit"

	comparemod "trendlens/internal/services/api/compare/module"
	creatorsmod "trendlens/internal/services/api/creators/module"
	metamod "trendlens/internal/services/api/meta/module"
	trendsmod "trendlens/internal/services/api/trends/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		WH:   opt.Store.WH,
		Sink: opt.Store.Sink,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		creatorsmod.New(deps),
		trendsmod.New(deps),
		comparemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
