// Package model defines core data structures for rspeclint.
package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Style selects which have_http_status status-code notation is enforced.
type Style int

const (
	styleInvalid Style = iota

	// StyleSymbolic enforces symbol arguments: have_http_status :ok
	StyleSymbolic

	// StyleNumeric enforces integer arguments: have_http_status 200
	StyleNumeric
)

var styleValueMap = map[Style]string{
	StyleSymbolic: "symbolic",
	StyleNumeric:  "numeric",
}

func (s Style) String() string {
	v, ok := styleValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(s))
	}

	return v
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Style) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range styleValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown enforced style %q", text)
}

// UnmarshalYAML decodes a style from its string spelling. yaml.v3 does not
// consult encoding.TextUnmarshaler on its own.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(text))
}

// LiteralKind classifies a call argument's literal form.
type LiteralKind int

const (
	// LiteralOther covers everything that is not a plain integer or symbol:
	// strings, variables, nested calls, splats.
	LiteralOther LiteralKind = iota
	LiteralInt
	LiteralSymbol
)

// Span locates a node in its source file. Byte offsets are used for
// replacement, line and column for reporting.
type Span struct {
	StartByte uint32
	EndByte   uint32
	Line      int // 1-based
	Column    int // 1-based
}

// Argument is one call argument with its verbatim text and classified
// literal value.
type Argument struct {
	Text   string
	Kind   LiteralKind
	Int    int    // set when Kind == LiteralInt
	Symbol string // name without the leading colon, set when Kind == LiteralSymbol
	Span   Span
}

// Call is a method call expression extracted from a spec file.
type Call struct {
	Method      string
	HasReceiver bool
	Args        []Argument
	Span        Span
}

// Diagnostic is a single offense found in a spec file. Replacement is the
// corrected argument text covering Span; it is empty when no correction is
// possible (status registry unavailable or the literal has no entry).
type Diagnostic struct {
	File        string
	Line        int
	Column      int
	Message     string
	Replacement string
	Span        Span
}
