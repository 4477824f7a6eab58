package modkit

import (
	"net/http"
	"testing"

	"frontdesk/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("zero build = %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatalf("hooks should default to no-ops")
	}
	// defaults must be callable
	b.Register(nil)
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter should pass through its input")
	}
}

func TestBuildOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("parse"),
		WithPrefix("/parse"),
		WithMiddlewares(mw),
		WithPorts(struct{ N int }{N: 1}),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "parse" || b.Prefix != "/parse" {
		t.Fatalf("build = %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("middlewares = %d", len(b.Mw))
	}
	if b.Ports == nil {
		t.Fatalf("ports not set")
	}
	b.Register(nil)
	if !registered {
		t.Fatalf("register hook not wired")
	}
}

func TestBuildMiddlewareAppendOrder(t *testing.T) {
	order := []string{}
	mk := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			order = append(order, tag)
			return next
		}
	}

	b := Build(WithMiddlewares(mk("a")), WithMiddlewares(mk("b"), mk("c")))
	if len(b.Mw) != 3 {
		t.Fatalf("middlewares = %d", len(b.Mw))
	}
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, mw := range b.Mw {
		h = mw(h)
	}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v", order)
	}
}

func TestDepsZeroOK(t *testing.T) {
	var d Deps
	if !d.ZeroOK() {
		t.Fatalf("zero deps should be usable in tests")
	}
}
