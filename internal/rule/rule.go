// Package rule implements the have_http_status status-code style check.
package rule

import (
	"fmt"
	"strconv"

	"github.com/speclab/rspeclint/internal/httpstatus"
	"github.com/speclab/rspeclint/internal/model"
)

const matcherName = "have_http_status"

// messageFormat mirrors rubocop-rspec's HttpStatus message so editor
// integrations keyed on that text keep working.
const messageFormat = "Prefer `%s` over `%s` to describe HTTP status code."

// allowedGroups are symbolic names covering a class of codes (any 2xx, any
// 3xx, …). They have no single numeric equivalent and are never offenses.
var allowedGroups = map[string]struct{}{
	"error":    {},
	"success":  {},
	"missing":  {},
	"redirect": {},
}

// styleChecker decides offenses for one enforced style.
type styleChecker interface {
	// match returns the checked argument for calls shaped as a bare
	// have_http_status(<literal>) in this style's rejected notation.
	match(call model.Call) (model.Argument, bool)

	// offensive reports whether a matched argument is an offense.
	offensive(arg model.Argument) bool

	// preferred returns the corrected argument text. resolved is false when
	// the registry is unavailable or has no entry for the literal; the text
	// is then the style name, usable in messages but not as a replacement.
	preferred(arg model.Argument) (text string, resolved bool)

	// current returns the as-written argument for messages, or the style
	// name when the registry is unavailable.
	current(arg model.Argument) string
}

// HTTPStatus checks have_http_status arguments against the enforced style.
// It is stateless across calls and safe for concurrent use.
type HTTPStatus struct {
	table   *httpstatus.Table
	checker styleChecker
}

// New returns the rule for the given enforced style.
func New(style model.Style, table *httpstatus.Table) *HTTPStatus {
	var c styleChecker
	switch style {
	case model.StyleNumeric:
		c = numericChecker{table: table}
	default:
		c = symbolicChecker{table: table}
	}

	return &HTTPStatus{table: table, checker: c}
}

// SupportsAutocorrect reports whether replacements can be computed. With the
// registry unavailable offenses are still reported, without fixes.
func (r *HTTPStatus) SupportsAutocorrect() bool {
	return r.table.Available()
}

// Check inspects one call expression. The returned diagnostic carries a
// replacement covering the argument span unless the registry is unavailable
// or the literal has no registry entry.
func (r *HTTPStatus) Check(file string, call model.Call) (model.Diagnostic, bool) {
	arg, ok := r.checker.match(call)
	if !ok {
		return model.Diagnostic{}, false
	}
	if !r.checker.offensive(arg) {
		return model.Diagnostic{}, false
	}

	preferred, resolved := r.checker.preferred(arg)

	d := model.Diagnostic{
		File:    file,
		Line:    arg.Span.Line,
		Column:  arg.Span.Column,
		Message: fmt.Sprintf(messageFormat, preferred, r.checker.current(arg)),
		Span:    arg.Span,
	}
	if resolved {
		d.Replacement = preferred
	}

	return d, true
}

// matchCall accepts bare have_http_status calls with exactly one literal
// argument of the wanted kind. Method calls on an explicit receiver, other
// arities and other literal kinds are silent non-matches.
func matchCall(call model.Call, kind model.LiteralKind) (model.Argument, bool) {
	if call.Method != matcherName || call.HasReceiver || len(call.Args) != 1 {
		return model.Argument{}, false
	}

	arg := call.Args[0]
	if arg.Kind != kind {
		return model.Argument{}, false
	}

	return arg, true
}

// symbolicChecker flags numeric literals. Every status code has a symbolic
// name, so all matches are offenses.
type symbolicChecker struct {
	table *httpstatus.Table
}

func (c symbolicChecker) match(call model.Call) (model.Argument, bool) {
	return matchCall(call, model.LiteralInt)
}

func (c symbolicChecker) offensive(model.Argument) bool {
	return true
}

func (c symbolicChecker) preferred(arg model.Argument) (string, bool) {
	if !c.table.Available() {
		return "symbolic", false
	}
	sym, ok := c.table.SymbolFor(arg.Int)
	if !ok {
		return "symbolic", false
	}
	return ":" + sym, true
}

func (c symbolicChecker) current(arg model.Argument) string {
	if !c.table.Available() {
		return "numeric"
	}
	return strconv.Itoa(arg.Int)
}

// numericChecker flags symbol literals, except group symbols such as
// :success which cover a code range and have no numeric spelling.
type numericChecker struct {
	table *httpstatus.Table
}

func (c numericChecker) match(call model.Call) (model.Argument, bool) {
	return matchCall(call, model.LiteralSymbol)
}

func (c numericChecker) offensive(arg model.Argument) bool {
	_, allowed := allowedGroups[arg.Symbol]
	return !allowed
}

func (c numericChecker) preferred(arg model.Argument) (string, bool) {
	if !c.table.Available() {
		return "numeric", false
	}
	code, ok := c.table.CodeFor(arg.Symbol)
	if !ok {
		return "numeric", false
	}
	return strconv.Itoa(code), true
}

func (c numericChecker) current(arg model.Argument) string {
	if !c.table.Available() {
		return "symbolic"
	}
	return ":" + arg.Symbol
}
