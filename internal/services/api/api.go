// Package api provides the HTTP API for the application
package api

import (
	"time"

	"frontdesk/internal/platform/config"
	"frontdesk/internal/platform/logger"
	phttp "frontdesk/internal/platform/net/http"
	"frontdesk/internal/platform/net/middleware"

	"frontdesk/internal/modkit"
	"frontdesk/internal/modkit/httpkit"
	"frontdesk/internal/modkit/module"

	metamod "frontdesk/internal/services/api/meta/module"
	parsemod "frontdesk/internal/services/api/parse/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}

	// parse comes up first, meta reports on what it managed to wire
	parseOpts := parsemod.FromConfig(deps.Cfg)
	parseModule := parsemod.New(deps, parseOpts)
	ports := module.MustPortsOf[parsemod.Ports](parseModule)

	mods := []module.Module{
		metamod.New(deps, metamod.Info{
			OCRReady:    ports.OCRReady,
			Timezone:    ports.Timezone,
			Departments: ports.Departments,
		}),
		parseModule,
	}

	// service wide throttle, the parse module adds its own tighter one
	apiLimit := middleware.RateLimit(middleware.RateLimitOptions{
		Requests: deps.Cfg.MayInt("RATE_LIMIT", 100),
		Window:   deps.Cfg.MayDuration("RATE_WINDOW", 15*time.Minute),
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, append(httpkit.CommonStack(), apiLimit), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
