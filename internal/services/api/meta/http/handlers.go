// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"frontdesk/internal/core/version"
	"frontdesk/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time

	// OCRReady reports whether the image recognition path came up at boot
	OCRReady bool
	// Departments is the loaded catalog size
	Departments int
	// Timezone is the zone appointments resolve into
	Timezone string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name        string `json:"name"`
	Started     string `json:"started"`
	Uptime      int64  `json:"uptime"`
	Timezone    string `json:"timezone"`
	Departments int    `json:"departments"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(_ *http.Request) (any, error) {
	catalog := ReadyCheck{Name: "departments", Status: "ok"}
	if h.deps.Departments == 0 {
		catalog = ReadyCheck{Name: "departments", Status: "fail", Error: "catalog is empty"}
	}

	// text parsing works without OCR so a missing engine only degrades
	ocr := ReadyCheck{Name: "ocr", Status: "ok"}
	if !h.deps.OCRReady {
		ocr = ReadyCheck{Name: "ocr", Status: "skipped"}
	}

	overall := "ok"
	if ocr.Status != "ok" {
		overall = "degraded"
	}
	if catalog.Status == "fail" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{catalog, ocr},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:        h.deps.ServiceName,
		Started:     h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:      int64(uptime / time.Second),
		Timezone:    h.deps.Timezone,
		Departments: h.deps.Departments,
	}, nil
}
