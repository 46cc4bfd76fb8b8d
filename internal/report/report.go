// Package report renders diagnostics as rubocop-style text output.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/speclab/rspeclint/internal/model"
)

var (
	pathColor      = color.New(color.FgCyan)
	offenseColor   = color.New(color.FgRed)
	correctedColor = color.New(color.FgGreen)
)

// Reporter accumulates per-file results and writes offense lines followed by
// a closing summary. Not safe for concurrent use; callers report in file
// order after analysis completes.
type Reporter struct {
	w         io.Writer
	files     int
	offenses  int
	corrected int
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// FileDone records one inspected file.
func (r *Reporter) FileDone() {
	r.files++
}

// Offense writes one diagnostic line: path:line:col: message, with a
// [corrected] marker when the offense was autocorrected.
func (r *Reporter) Offense(d model.Diagnostic, corrected bool) {
	r.offenses++
	marker := ""
	if corrected {
		r.corrected++
		marker = " " + correctedColor.Sprint("[corrected]")
	}
	fmt.Fprintf(r.w, "%s:%d:%d: %s%s\n",
		pathColor.Sprint(d.File), d.Line, d.Column, offenseColor.Sprint(d.Message), marker)
}

// Summary writes the closing count line and returns the offense and
// correction totals.
func (r *Reporter) Summary() (offenses, corrected int) {
	fmt.Fprintf(r.w, "\n%s inspected, %s detected", plural(r.files, "file"), plural(r.offenses, "offense"))
	if r.corrected > 0 {
		fmt.Fprintf(r.w, ", %s corrected", plural(r.corrected, "offense"))
	}
	fmt.Fprintln(r.w)
	return r.offenses, r.corrected
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
