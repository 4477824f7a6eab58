// Package http provides http transport for parse
package http

import (
	stdhttp "net/http"
	"strings"

	"frontdesk/internal/adapters/upload"
	"frontdesk/internal/modkit/httpkit"
	perr "frontdesk/internal/platform/errors"
	"frontdesk/internal/platform/logger"
	"frontdesk/internal/platform/net/http/bind"
	"frontdesk/internal/services/api/parse/domain"
)

// uploadField is the multipart field the note photo arrives on
const uploadField = "image"

// Deps are the handler dependencies
type Deps struct {
	Port    domain.ParsePort
	Uploads *upload.Store
}

type handlers struct {
	deps Deps
}

// Register mounts the parse endpoint on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// one endpoint, two bodies: JSON text or a multipart photo
	r.Post("/", httpkit.Handle(h.parse))
}

func (h *handlers) parse(r *stdhttp.Request) httpkit.Response {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(ct), "multipart/form-data") {
		return h.parseImage(r)
	}
	return h.parseText(r)
}

func (h *handlers) parseText(r *stdhttp.Request) httpkit.Response {
	in, err := bind.ParseJSON[domain.ParseTextRequest](r)
	if err != nil {
		return httpkit.Error(err)
	}
	return h.respond(h.deps.Port.ParseText(r.Context(), in.Text))
}

func (h *handlers) parseImage(r *stdhttp.Request) httpkit.Response {
	if h.deps.Uploads == nil {
		return httpkit.Error(perr.Validationf("image uploads are not enabled"))
	}

	f, hdr, err := r.FormFile(uploadField)
	if err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeValidation, "image file is required"))
	}
	defer func() { _ = f.Close() }()

	saved, err := h.deps.Uploads.Save(f, hdr.Filename)
	if err != nil {
		return httpkit.Error(err)
	}

	out := h.deps.Port.ParseImage(r.Context(), saved.Path)

	// the spool file is scratch space, drop it as soon as the pipeline is done
	if err := h.deps.Uploads.Remove(saved.Path); err != nil {
		logger.C(r.Context()).Warn().Err(err).Str("path", saved.Path).Msg("remove spooled upload")
	}

	return h.respond(out)
}

// respond maps a pipeline outcome onto the wire
// clarifications are 200s, only real failures go through the error envelope
func (h *handlers) respond(out domain.Outcome) httpkit.Response {
	switch out.Status {
	case domain.StatusOK:
		return httpkit.OK(domain.ParseOKResponse{
			Status:      out.Status,
			Appointment: *out.Appointment,
		})
	case domain.StatusNeedsClarification:
		return httpkit.OK(domain.ClarifyResponse{
			Status:      out.Status,
			Message:     out.Message,
			Diagnostics: out.Diagnostics,
		})
	default:
		err := out.Err
		if err == nil {
			err = perr.Internalf("parse pipeline returned no result")
		}
		return httpkit.Error(err)
	}
}
