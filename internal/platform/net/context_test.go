package net

import (
	"context"
	"testing"
)

func TestWithRequestAndRequestID(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Fatalf("empty ctx request id = %q", got)
	}

	ctx = WithRequest(ctx, "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("request id = %q, want req-42", got)
	}

	// empty id leaves ctx untouched
	base := context.Background()
	if got := WithRequest(base, ""); got != base {
		t.Fatalf("empty request id should not annotate")
	}
}
