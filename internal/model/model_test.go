package model

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStyleString(t *testing.T) {
	t.Parallel()
	if StyleSymbolic.String() != "symbolic" {
		t.Errorf("StyleSymbolic = %q", StyleSymbolic.String())
	}
	if StyleNumeric.String() != "numeric" {
		t.Errorf("StyleNumeric = %q", StyleNumeric.String())
	}
	if Style(0).String() != "invalid(0)" {
		t.Errorf("zero style = %q", Style(0).String())
	}
}

func TestStyleUnmarshalText(t *testing.T) {
	t.Parallel()

	var s Style
	if err := s.UnmarshalText([]byte("numeric")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if s != StyleNumeric {
		t.Errorf("s = %v, want numeric", s)
	}

	if err := s.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestStyleUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Style Style `yaml:"style"`
	}
	if err := yaml.Unmarshal([]byte("style: symbolic\n"), &doc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if doc.Style != StyleSymbolic {
		t.Errorf("style = %v, want symbolic", doc.Style)
	}

	if err := yaml.Unmarshal([]byte("style: [1, 2]\n"), &doc); err == nil {
		t.Error("expected error for non-scalar style")
	}
}

func TestStyleMarshalText(t *testing.T) {
	t.Parallel()
	b, err := StyleNumeric.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "numeric" {
		t.Errorf("MarshalText = %q", b)
	}
}
