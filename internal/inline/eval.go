// Package inline evaluates the small family of inline Python expressions
// that appear in build-variable values, such as
// ${@bb.utils.contains('DISTRO_FEATURES', 'systemd', 'yes', 'no', d)},
// without requiring a Python interpreter.
package inline

import (
	"strings"

	"github.com/catalystcommunity/bbvar/internal/bbutils"
)

// Evaluator evaluates inline expressions against a variable store.
type Evaluator struct {
	d bbutils.Getter
}

// NewEvaluator returns an Evaluator backed by d.
func NewEvaluator(d bbutils.Getter) *Evaluator {
	return &Evaluator{d: d}
}

// Evaluate evaluates expr and reports whether it could be handled. The
// ${@...} wrapper and a bare leading @ are both accepted. Unknown functions,
// unknown variables and malformed argument lists all report false so the
// caller can keep the original expression.
func (e *Evaluator) Evaluate(expr string) (string, bool) {
	inner := strings.TrimSpace(expr)
	if strings.HasPrefix(inner, "${@") && strings.HasSuffix(inner, "}") {
		inner = inner[3 : len(inner)-1]
	} else {
		inner = strings.TrimPrefix(inner, "@")
	}

	switch {
	case strings.Contains(inner, "bb.utils.contains_any"):
		return e.evalContainsAny(inner)
	case strings.Contains(inner, "bb.utils.contains"):
		return e.evalContains(inner)
	case strings.Contains(inner, "bb.utils.filter"):
		return e.evalFilter(inner)
	}
	return "", false
}

// evalContains handles bb.utils.contains(var, item, true_val, false_val, d).
func (e *Evaluator) evalContains(expr string) (string, bool) {
	args, ok := parseCallArgs(expr, "bb.utils.contains")
	if !ok || len(args) < 4 {
		return "", false
	}
	if _, ok := e.d.GetVar(args[0], true); !ok {
		return "", false
	}
	return bbutils.Contains(e.d, args[0], args[1], args[2], args[3]), true
}

// evalContainsAny handles bb.utils.contains_any(var, items, true_val, false_val, d).
func (e *Evaluator) evalContainsAny(expr string) (string, bool) {
	args, ok := parseCallArgs(expr, "bb.utils.contains_any")
	if !ok || len(args) < 4 {
		return "", false
	}
	if _, ok := e.d.GetVar(args[0], true); !ok {
		return "", false
	}
	return bbutils.ContainsAny(e.d, args[0], args[1], args[2], args[3]), true
}

// evalFilter handles bb.utils.filter(var, items, d).
func (e *Evaluator) evalFilter(expr string) (string, bool) {
	args, ok := parseCallArgs(expr, "bb.utils.filter")
	if !ok || len(args) < 2 {
		return "", false
	}
	if _, ok := e.d.GetVar(args[0], true); !ok {
		return "", false
	}
	return bbutils.Filter(e.d, args[0], args[1]), true
}

// parseCallArgs extracts the argument list of the first funcName(...) call
// in expr, with quotes stripped.
func parseCallArgs(expr, funcName string) ([]string, bool) {
	start := strings.Index(expr, funcName)
	if start < 0 {
		return nil, false
	}
	rest := expr[start+len(funcName):]
	open := strings.Index(rest, "(")
	if open < 0 {
		return nil, false
	}
	rest = rest[open+1:]
	closing, ok := findMatchingParen(rest)
	if !ok {
		return nil, false
	}
	return splitArgs(rest[:closing]), true
}

// findMatchingParen returns the index of the parenthesis closing an already
// opened call, skipping quoted sections.
func findMatchingParen(s string) (int, bool) {
	depth := 1
	inSingle := false
	inDouble := false
	for i, ch := range s {
		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		case ch == '(' && !inSingle && !inDouble:
			depth++
		case ch == ')' && !inSingle && !inDouble:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// splitArgs splits a comma-separated argument list, honoring quotes and
// nested parentheses. Quote characters are dropped from the results.
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	depth := 0

	flush := func() {
		args = append(args, strings.TrimSpace(current.String()))
		current.Reset()
	}

	for _, ch := range s {
		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		case ch == '(' && !inSingle && !inDouble:
			depth++
			current.WriteRune(ch)
		case ch == ')' && !inSingle && !inDouble:
			depth--
			current.WriteRune(ch)
		case ch == ',' && !inSingle && !inDouble && depth == 0:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	if strings.TrimSpace(current.String()) != "" || len(args) > 0 {
		flush()
	}
	return args
}
