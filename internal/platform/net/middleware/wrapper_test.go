package middleware

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestIDThenRequestContext(t *testing.T) {
	var seen string
	inner := stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		seen = chimw.GetReqID(r.Context())
		w.WriteHeader(200)
	})

	h := RequestID()(RequestContext(inner))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("request id not propagated to handler context")
	}
}

func TestRecoverJSON(t *testing.T) {
	h := RecoverJSON(stdhttp.HandlerFunc(func(stdhttp.ResponseWriter, *stdhttp.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body panicWire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v\n%s", err, rec.Body.String())
	}
	if body.StatusCode != 500 || body.Error == "" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecoverJSONPassesThrough(t *testing.T) {
	h := RecoverJSON(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(204)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rec.Code != 204 {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestAccessLogZerologCapturesStatusAndBytes(t *testing.T) {
	h := AccessLogZerolog(AccessLogOptions{})(stdhttp.HandlerFunc(
		func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(201)
			_, _ = w.Write([]byte("created"))
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/parse", nil))

	if rec.Code != 201 {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "created" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestCaptureWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: 200}

	cw.WriteHeader(404)
	n, err := cw.Write([]byte("missing"))
	if err != nil || n != 7 {
		t.Fatalf("write = %d, %v", n, err)
	}
	if cw.status != 404 || cw.bytes != 7 {
		t.Fatalf("captured status=%d bytes=%d", cw.status, cw.bytes)
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/health")(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(500) // must never be reached for /health
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))
	if rec.Code != 200 {
		t.Fatalf("heartbeat = %d", rec.Code)
	}
}

func TestCORSDefaults(t *testing.T) {
	h := CORS(CORSOptions{})(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(200)
	}))

	req := httptest.NewRequest(stdhttp.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", stdhttp.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("missing allow-origin header")
	}
}

func TestDefaultsStack(t *testing.T) {
	mws := Defaults()
	if len(mws) == 0 {
		t.Fatalf("Defaults returned empty stack")
	}
	h := stdhttp.Handler(stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(200)
	}))
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rec.Code != 200 {
		t.Fatalf("stacked handler = %d", rec.Code)
	}
}
