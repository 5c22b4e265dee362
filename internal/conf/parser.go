// Package conf parses BitBake-style configuration files into a variable
// store. It supports the common assignment operators, override-qualified
// variable names, comments and line continuations, plus flat YAML variable
// maps as an alternate input format.
package conf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Assignment operators.
const (
	OpAssign        = "="
	OpWeakDefault   = "?="
	OpWeakerDefault = "??="
	OpAppend        = "+="
	OpPrepend       = "=+"
	OpDotAppend     = ".="
	OpDotPrepend    = "=."
	OpRemove        = ":remove"
	OpUnset         = "unset"
)

// Assignment is a single parsed configuration statement.
type Assignment struct {
	// Name is the variable name with override qualifiers stripped.
	Name string
	// Op is one of the operator constants above. The :append and :prepend
	// name suffixes normalize to OpAppend and OpPrepend.
	Op string
	// Overrides holds qualifiers from the variable name, e.g. "qemuarm"
	// for IMAGE_FSTYPES:qemuarm.
	Overrides []string
	// Value is the unquoted right-hand side. Empty for unset.
	Value string
	// Line is the 1-based source line the statement started on.
	Line int
}

// ParseError reports a malformed statement with its line number.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParseReader parses conf syntax from r into a list of assignments.
// Comments, blank lines and trailing-backslash continuations are handled
// here; statements are returned in source order.
func ParseReader(r io.Reader) ([]Assignment, error) {
	var assignments []Assignment
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	startLine := 0
	var pending strings.Builder

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if pending.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			startLine = lineNo
		}

		if strings.HasSuffix(strings.TrimRight(line, " \t"), "\\") {
			trimmed := strings.TrimRight(line, " \t")
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteString(" ")
			continue
		}

		pending.WriteString(line)
		stmt := pending.String()
		pending.Reset()

		a, err := ParseAssignment(stmt)
		if err != nil {
			return nil, &ParseError{Line: startLine, Msg: err.Error()}
		}
		a.Line = startLine
		assignments = append(assignments, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conf input: %w", err)
	}
	if pending.Len() > 0 {
		return nil, &ParseError{Line: startLine, Msg: "unterminated line continuation"}
	}

	return assignments, nil
}

// ParseAssignment parses a single logical statement (continuations already
// joined) into an Assignment.
func ParseAssignment(stmt string) (Assignment, error) {
	stmt = strings.TrimSpace(stmt)

	if rest, ok := strings.CutPrefix(stmt, "unset "); ok {
		name := strings.TrimSpace(rest)
		if name == "" {
			return Assignment{}, fmt.Errorf("unset requires a variable name")
		}
		return Assignment{Name: name, Op: OpUnset}, nil
	}

	// "export VAR = ..." assigns like any other statement.
	if rest, ok := strings.CutPrefix(stmt, "export "); ok {
		stmt = strings.TrimSpace(rest)
	}

	eq := strings.IndexByte(stmt, '=')
	if eq < 0 {
		return Assignment{}, fmt.Errorf("not an assignment: %q", stmt)
	}

	left := stmt[:eq]
	right := stmt[eq+1:]
	op := OpAssign

	switch {
	case strings.HasSuffix(left, "??"):
		op = OpWeakerDefault
		left = strings.TrimSuffix(left, "??")
	case strings.HasSuffix(left, "?"):
		op = OpWeakDefault
		left = strings.TrimSuffix(left, "?")
	case strings.HasSuffix(left, "+"):
		op = OpAppend
		left = strings.TrimSuffix(left, "+")
	case strings.HasSuffix(strings.TrimSpace(left), "."):
		op = OpDotAppend
		left = strings.TrimSuffix(strings.TrimSpace(left), ".")
	case strings.HasPrefix(right, "+"):
		op = OpPrepend
		right = right[1:]
	case strings.HasPrefix(right, "."):
		op = OpDotPrepend
		right = right[1:]
	}

	// ":=" has no immediate-expansion handling here; it assigns like "=".
	namePart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(left), ":"))
	if namePart == "" {
		return Assignment{}, fmt.Errorf("missing variable name in %q", stmt)
	}

	a := Assignment{Op: op, Value: cleanValue(right)}

	parts := strings.Split(namePart, ":")
	a.Name = parts[0]
	for _, part := range parts[1:] {
		switch part {
		case "append":
			a.Op = OpAppend
		case "prepend":
			a.Op = OpPrepend
		case "remove":
			a.Op = OpRemove
		case "":
			return Assignment{}, fmt.Errorf("empty override qualifier in %q", namePart)
		default:
			a.Overrides = append(a.Overrides, part)
		}
	}
	if strings.ContainsAny(a.Name, " \t") {
		return Assignment{}, fmt.Errorf("invalid variable name %q", a.Name)
	}

	return a, nil
}

// cleanValue trims whitespace, strips one layer of surrounding quotes and
// trims again, so `:append = " pam"` carries the value "pam" and the apply
// step supplies the separating space.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return strings.TrimSpace(value)
}

// ParseOverrides splits a colon-separated OVERRIDES value into its active
// override names.
func ParseOverrides(overrides string) []string {
	var active []string
	for _, part := range strings.Split(overrides, ":") {
		part = strings.TrimSpace(part)
		if part != "" {
			active = append(active, part)
		}
	}
	return active
}
