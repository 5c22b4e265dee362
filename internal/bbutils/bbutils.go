// Package bbutils provides membership helpers over whitespace-separated
// variable values, matching the semantics of BitBake's bb.utils helpers.
package bbutils

import (
	"slices"
	"strings"
)

// Getter is the read surface the helpers need from a variable store.
// *datastore.DataStore satisfies it.
type Getter interface {
	GetVar(name string, expand bool) (string, bool)
}

// Contains returns onTrue if the value of varName, treated as
// whitespace-separated tokens, includes token. An absent variable or a
// missing token returns onFalse. Matching is exact and case-sensitive:
// substrings of other tokens do not count.
func Contains(d Getter, varName, token, onTrue, onFalse string) string {
	value, ok := d.GetVar(varName, true)
	if !ok {
		return onFalse
	}
	if slices.Contains(strings.Fields(value), token) {
		return onTrue
	}
	return onFalse
}

// ContainsAny returns onTrue if any whitespace-separated token of tokens is
// present in the value of varName, else onFalse.
func ContainsAny(d Getter, varName, tokens, onTrue, onFalse string) string {
	value, ok := d.GetVar(varName, true)
	if !ok {
		return onFalse
	}
	have := strings.Fields(value)
	for _, token := range strings.Fields(tokens) {
		if slices.Contains(have, token) {
			return onTrue
		}
	}
	return onFalse
}

// Filter returns the tokens of tokens that are present in the value of
// varName, joined by single spaces, preserving the order of tokens. An
// absent variable filters everything out.
func Filter(d Getter, varName, tokens string) string {
	value, ok := d.GetVar(varName, true)
	if !ok {
		return ""
	}
	have := strings.Fields(value)
	var kept []string
	for _, token := range strings.Fields(tokens) {
		if slices.Contains(have, token) {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, " ")
}
