// Package module wires the parse pipeline into the API using modkit
package module

import (
	"net/http"
	"time"

	"frontdesk/internal/adapters/ocr"
	"frontdesk/internal/adapters/timeparse"
	"frontdesk/internal/adapters/upload"
	"frontdesk/internal/core/extract"
	"frontdesk/internal/core/registry"
	"frontdesk/internal/core/resolve"
	"frontdesk/internal/core/textnorm"
	modkit "frontdesk/internal/modkit"
	"frontdesk/internal/modkit/httpkit"
	"frontdesk/internal/platform/net/middleware"
	str "frontdesk/internal/platform/strings"
	"frontdesk/internal/services/api/parse/domain"
	parsehttp "frontdesk/internal/services/api/parse/http"
	parsesvc "frontdesk/internal/services/api/parse/service"
)

// Ports exposes the parse surface for cross module wiring
type Ports struct {
	Parse domain.ParsePort

	// boot facts other modules report on
	OCRReady    bool
	Timezone    string
	Departments int
}

// Module implements the parse module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *parsesvc.Service
}

// New constructs the parse module
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("parse"),
		modkit.WithPrefix("/parse"),
		modkit.WithMiddlewares(middleware.RateLimit(middleware.RateLimitOptions{
			Requests: opt.UploadRateLimit,
			Window:   opt.RateWindow,
		})),
	}, opts...)...)

	loc, err := time.LoadLocation(opt.Timezone)
	if err != nil {
		panic("parse module: unknown timezone " + opt.Timezone)
	}

	parser := timeparse.New()
	reg := registry.MustLoad()

	// OCR is best effort at boot, a missing tesseract install disables
	// the image path but the text path stays up
	var engine ocr.Engine
	if opt.OCREnabled {
		tess, oerr := ocr.NewTesseract(opt.OCRLanguage)
		if oerr != nil {
			deps.Log.Warn().Err(oerr).Msg("ocr unavailable, image parsing disabled")
		} else {
			engine = tess
		}
	}

	uploads, err := upload.New(opt.UploadDir, opt.MaxUploadBytes)
	if err != nil {
		panic("parse module: upload dir: " + err.Error())
	}

	svc := parsesvc.New(parsesvc.Deps{
		Normalizer: textnorm.New(),
		Extractor:  extract.New(reg, parser),
		Resolver:   resolve.New(parser, loc, opt.Timezone),
		OCR:        engine,
		Zone:       loc,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Parse:       svc,
		OCRReady:    engine != nil,
		Timezone:    opt.Timezone,
		Departments: reg.Len(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		parsehttp.Register(r, parsehttp.Deps{
			Port:    svc,
			Uploads: uploads,
		})
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module's port set
func (m *Module) Ports() any { return m.ports }
