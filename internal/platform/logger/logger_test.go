package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "steelapp/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "debug"},
		{"   nonsense   ", "debug"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C_WithRequest(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:      "info",
		Format:     "json",
		Service:    "steelapp",
		Component:  "root",
		Writer:     &buf,
		WithCaller: true,
		StaticFields: map[string]string{
			"env": "test",
		},
	})

	// Init is once-only; a second call must not replace the root
	Init(Options{Level: "error", Writer: &bytes.Buffer{}})

	l := Get()
	if l == nil {
		t.Fatal("Get returned nil logger")
	}
	if l.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("root level = %v, want info", l.GetLevel())
	}

	Named("uaetime").Info().Msg("component hello")
	kit.MustContain(t, buf.String(), "component hello")
	kit.MustContain(t, buf.String(), "uaetime")

	ctx := WithRequest(context.Background(), "req-123", "tenant-9")
	C(ctx).Info().Msg("scoped hello")
	out := buf.String()
	kit.MustContain(t, out, "scoped hello")
	kit.MustContain(t, out, "req-123")
	kit.MustContain(t, out, "tenant-9")
	kit.MustContain(t, out, `"env":"test"`)
}

func TestC_EmptyContextFields(t *testing.T) {
	// no request fields set; C must not add them
	l := C(context.Background())
	if l == nil {
		t.Fatal("C returned nil logger")
	}
}

func TestNamed_EmptyComponentReturnsRoot(t *testing.T) {
	if Named("") != Get() {
		t.Fatal("Named(\"\") should return the root logger pointer")
	}
}
