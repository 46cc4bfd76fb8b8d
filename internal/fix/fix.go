// Package fix splices autocorrection replacements into source text.
package fix

import (
	"sort"

	"github.com/speclab/rspeclint/internal/model"
)

// Apply returns source with each diagnostic's replacement spliced over its
// span, plus the number of replacements applied. Diagnostics without a
// replacement are skipped, as are spans outside the source or overlapping an
// already-applied span.
func Apply(source []byte, diags []model.Diagnostic) ([]byte, int) {
	var fixable []model.Diagnostic
	for _, d := range diags {
		if d.Replacement == "" {
			continue
		}
		if d.Span.StartByte >= d.Span.EndByte || int(d.Span.EndByte) > len(source) {
			continue
		}
		fixable = append(fixable, d)
	}

	// Splice back to front so earlier offsets stay valid.
	sort.Slice(fixable, func(i, j int) bool {
		return fixable[i].Span.StartByte > fixable[j].Span.StartByte
	})

	out := append([]byte(nil), source...)
	applied := 0
	lastStart := len(source)
	for _, d := range fixable {
		if int(d.Span.EndByte) > lastStart {
			continue
		}
		out = append(out[:d.Span.StartByte], append([]byte(d.Replacement), out[d.Span.EndByte:]...)...)
		lastStart = int(d.Span.StartByte)
		applied++
	}

	return out, applied
}
