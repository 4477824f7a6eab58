package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeRecognition, http.StatusBadGateway},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeRecognition, "ocr failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if CodeOf(e3) != ErrorCodeRecognition {
		t.Fatalf("CodeOf(Wrap) = %v", CodeOf(e3))
	}
	e4 := Wrapf(src, ErrorCodeValidation, "nope %s", "here")
	// Error() includes message + ": " + orig
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeValidation {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write)
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "email")
	if fe, ok := As(e6); !ok || fe.Field() != "email" {
		t.Fatalf("WithField failed")
	}
	// original unchanged
	if fe0, _ := As(e5); fe0.Field() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	// foreign error passes through untouched
	if got := WithField(src, "name"); got != src {
		t.Fatalf("WithField changed foreign error")
	}

	// Wire / WireFrom
	w := (&Error{code: ErrorCodeValidation, msg: "nope", field: "text"}).ToWire()
	if w.Code != ErrorCodeValidation || w.Message != "nope" || w.Field != "text" {
		t.Fatalf("ToWire = %+v", w)
	}
	if w2 := WireFrom(src); w2.Code != ErrorCodeUnknown || w2.Message != "root" {
		t.Fatalf("WireFrom foreign = %+v", w2)
	}
	if w3 := WireFrom(nil); w3 != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w3)
	}
}

func TestRootAndIsCode(t *testing.T) {
	src := stderrs.New("deep")
	mid := Wrap(src, ErrorCodeUnavailable, "retry later")
	top := Wrap(mid, ErrorCodeUnknown, "outer")

	if got := Root(top); got != src {
		t.Fatalf("Root = %v, want deep", got)
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) != nil")
	}
	if !IsCode(mid, ErrorCodeUnavailable) {
		t.Fatalf("IsCode missed wrapped code")
	}
	if IsCode(src, ErrorCodeUnavailable) {
		t.Fatalf("IsCode matched foreign error")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{InvalidArgf("x %d", 1), ErrorCodeInvalidArgument},
		{Validationf("x"), ErrorCodeValidation},
		{JSONErrf("x"), ErrorCodeJSON},
		{PanicErrf("x"), ErrorCodePanic},
		{TooManyf("x"), ErrorCodeTooManyRequests},
		{Recognitionf("x"), ErrorCodeRecognition},
		{Internalf("x"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("CodeOf(%v) = %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
}

func TestHTTPBundle(t *testing.T) {
	status, w := HTTP(Validationf("text is required"))
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if w.Code != ErrorCodeValidation || w.Message != "text is required" {
		t.Fatalf("wire = %+v", w)
	}

	status, w = HTTP(nil)
	if status != http.StatusOK || w != (Wire{}) {
		t.Fatalf("HTTP(nil) = %d %+v", status, w)
	}
}
