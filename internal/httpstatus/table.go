// Package httpstatus maps numeric HTTP status codes to the canonical
// symbolic names used by RSpec's have_http_status matcher.
package httpstatus

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed statuses.yml
var registryData []byte

// Table is an immutable bidirectional status registry, safe for concurrent
// reads. The zero value is the unavailable table; construct with Load or
// Unavailable.
type Table struct {
	codeToSymbol map[int]string
	symbolToCode map[string]int
	available    bool
}

type registryEntry struct {
	Code   int    `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

// Load builds the table from the embedded registry, once at startup. If the
// registry cannot be decoded the table reports itself unavailable; callers
// must check Available before looking anything up.
func Load() *Table {
	var entries []registryEntry
	if err := yaml.Unmarshal(registryData, &entries); err != nil || len(entries) == 0 {
		return Unavailable()
	}

	t := &Table{
		codeToSymbol: make(map[int]string, len(entries)),
		symbolToCode: make(map[string]int, len(entries)),
		available:    true,
	}
	for _, e := range entries {
		// First declaration wins, pinning one canonical symbol per code.
		if _, ok := t.codeToSymbol[e.Code]; !ok {
			t.codeToSymbol[e.Code] = e.Symbol
		}
		if _, ok := t.symbolToCode[e.Symbol]; !ok {
			t.symbolToCode[e.Symbol] = e.Code
		}
	}
	return t
}

// Unavailable returns a table in degraded mode: offenses are still reported
// but nothing can be looked up or autocorrected.
func Unavailable() *Table {
	return &Table{}
}

// Available reports whether lookups may be used.
func (t *Table) Available() bool {
	return t.available
}

// SymbolFor returns the canonical symbolic name for a status code.
func (t *Table) SymbolFor(code int) (string, bool) {
	sym, ok := t.codeToSymbol[code]
	return sym, ok
}

// CodeFor returns the status code for a canonical symbolic name.
func (t *Table) CodeFor(symbol string) (int, bool) {
	code, ok := t.symbolToCode[symbol]
	return code, ok
}
