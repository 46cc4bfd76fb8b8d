// Package parse extracts method call expressions from Ruby spec files using
// tree-sitter.
package parse

import (
	"context"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/speclab/rspeclint/internal/model"
)

//go:embed queries/ruby.scm
var queryFS embed.FS

var (
	queryOnce sync.Once
	callQuery *sitter.Query
	queryErr  error
)

// CallQuery returns the compiled call-expression query (safe to share across
// goroutines).
func CallQuery() (*sitter.Query, error) {
	queryOnce.Do(func() {
		data, err := queryFS.ReadFile("queries/ruby.scm")
		if err != nil {
			queryErr = fmt.Errorf("reading query file: %w", err)
			return
		}
		q, err := sitter.NewQuery(data, ruby.GetLanguage())
		if err != nil {
			queryErr = fmt.Errorf("compiling query: %w", err)
			return
		}
		callQuery = q
	})
	return callQuery, queryErr
}

// NewParser creates a fresh Ruby parser.
// Each goroutine must use its own parser (not thread-safe).
func NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(ruby.GetLanguage())
	return p
}

// Calls parses source and returns every method call expression with an
// identifier callee, recording receiver presence and classifying literal
// arguments. Sources that fail to parse yield no calls.
func Calls(parser *sitter.Parser, query *sitter.Query, source []byte) []model.Call {
	if len(source) == 0 {
		return nil
	}

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var calls []model.Call

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		var callNode, methodNode *sitter.Node
		for _, c := range match.Captures {
			switch query.CaptureNameForId(c.Index) {
			case "call":
				callNode = c.Node
			case "method":
				methodNode = c.Node
			}
		}
		if callNode == nil || methodNode == nil {
			continue
		}

		call := model.Call{
			Method:      nodeText(methodNode, source),
			HasReceiver: callNode.ChildByFieldName("receiver") != nil,
			Span:        nodeSpan(callNode),
		}
		if args := callNode.ChildByFieldName("arguments"); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				call.Args = append(call.Args, classifyArgument(args.NamedChild(i), source))
			}
		}

		calls = append(calls, call)
	}

	return calls
}

// classifyArgument records the argument's verbatim text and, for plain
// integer and symbol literals, its decoded value.
func classifyArgument(node *sitter.Node, source []byte) model.Argument {
	arg := model.Argument{
		Text: nodeText(node, source),
		Kind: model.LiteralOther,
		Span: nodeSpan(node),
	}

	switch node.Type() {
	case "integer":
		// Ruby allows digit separators: 2_00.
		v, err := strconv.Atoi(strings.ReplaceAll(arg.Text, "_", ""))
		if err == nil {
			arg.Kind = model.LiteralInt
			arg.Int = v
		}
	case "simple_symbol":
		arg.Kind = model.LiteralSymbol
		arg.Symbol = strings.TrimPrefix(arg.Text, ":")
	}

	return arg
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

func nodeSpan(node *sitter.Node) model.Span {
	return model.Span{
		StartByte: node.StartByte(),
		EndByte:   node.EndByte(),
		Line:      int(node.StartPoint().Row) + 1,
		Column:    int(node.StartPoint().Column) + 1,
	}
}
