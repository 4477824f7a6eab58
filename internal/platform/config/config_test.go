package config

import (
	"testing"
	"time"

	kit "frontdesk/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiParse := api.Prefix("PARSE_")
	if got := apiParse.key("TZ"); got != "API_PARSE_TZ" {
		t.Fatalf("nested key() = %q, want %q", got, "API_PARSE_TZ")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  frontdesk ")
	got := c.MustString("NAME")
	if got != "frontdesk" {
		t.Fatalf("MustString = %q, want %q", got, "frontdesk")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_PORT", "8080")
	if got := c.MustPort("PORT"); got != ":8080" {
		t.Fatalf("MustPort = %q, want %q", got, ":8080")
	}
	t.Setenv("SVC_BAD", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("SVC_WORSE", "web")
	kit.MustPanic(t, func() { _ = c.MustPort("WORSE") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayString("MISSING", "dflt"); got != "dflt" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("M_SET", " value ")
	if got := c.MayString("SET", "dflt"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("MI_")
	if got := c.MayInt("MISSING", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("MI_N", " 42 ")
	if got := c.MayInt("N", 7); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("MI_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
}

func TestMayInt64(t *testing.T) {
	c := New().Prefix("MI64_")
	t.Setenv("MI64_N", "10485760")
	if got := c.MayInt64("N", 1); got != 10485760 {
		t.Fatalf("MayInt64 = %d", got)
	}
	t.Setenv("MI64_BAD", "1e6")
	if got := c.MayInt64("BAD", 5); got != 5 {
		t.Fatalf("MayInt64 invalid = %d, want default", got)
	}
}

func TestMayFloat64(t *testing.T) {
	c := New().Prefix("MF_")
	t.Setenv("MF_RATE", "2.5")
	if got := c.MayFloat64("RATE", 1.0); got != 2.5 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	t.Setenv("MF_BAD", "fast")
	if got := c.MayFloat64("BAD", 1.0); got != 1.0 {
		t.Fatalf("MayFloat64 invalid = %v, want default", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("MB_")
	t.Setenv("MB_ON", "true")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool true expected")
	}
	if c.MayBool("MISSING", false) {
		t.Fatalf("MayBool default expected")
	}
	t.Setenv("MB_BAD", "notabool")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool invalid should use default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("MD_")
	t.Setenv("MD_WINDOW", " 15m ")
	if got := c.MayDuration("WINDOW", time.Minute); got != 15*time.Minute {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("MISSING", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("MD_BAD", "soon")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid = %v, want default", got)
	}
}
