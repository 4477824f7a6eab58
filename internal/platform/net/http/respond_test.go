package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "frontdesk/internal/platform/errors"
	pnet "frontdesk/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, rec.Body.String())
	}
	return env
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-1"))

	RespondOK(rec, req, map[string]string{"k": "v"})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	env := decodeEnvelope(t, rec)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	RespondError(rec, req, perr.Validationf("text is required"))

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Error != "text is required" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandleReturnStyle(t *testing.T) {
	cases := []struct {
		name       string
		resp       Response
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "ok with data",
			resp:       OK(map[string]string{"a": "b"}),
			wantStatus: 200,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				env := decodeEnvelope(t, rec)
				if env.Data == nil {
					t.Fatalf("missing data: %+v", env)
				}
			},
		},
		{
			name:       "no content writes nothing",
			resp:       NoContent(),
			wantStatus: 204,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				if rec.Body.Len() != 0 {
					t.Fatalf("204 with body %q", rec.Body.String())
				}
			},
		},
		{
			name:       "error body maps to status",
			resp:       Error(perr.Recognitionf("ocr failed")),
			wantStatus: stdhttp.StatusBadGateway,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				env := decodeEnvelope(t, rec)
				if env.Code != perr.ErrorCodeRecognition || env.Error != "ocr failed" {
					t.Fatalf("envelope = %+v", env)
				}
			},
		},
		{
			name:       "zero status defaults to 200",
			resp:       Response{Body: "x"},
			wantStatus: 200,
			check:      func(t *testing.T, rec *httptest.ResponseRecorder) {},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
			Handle(func(*stdhttp.Request) Response { return tc.resp })(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			tc.check(t, rec)
		})
	}
}

func TestResponseCustomHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	resp := OK("x")
	resp.Header = stdhttp.Header{"X-Custom": []string{"yes"}}
	Handle(func(*stdhttp.Request) Response { return resp })(rec, req)

	if got := rec.Header().Get("X-Custom"); got != "yes" {
		t.Fatalf("custom header = %q", got)
	}
}
