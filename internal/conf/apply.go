package conf

import (
	"slices"
	"strings"

	"github.com/catalystcommunity/bbvar/internal/datastore"
)

// appliesTo reports whether an assignment takes effect given the active
// override list. An unqualified assignment always applies; a qualified one
// needs every qualifier active.
func (a Assignment) appliesTo(active []string) bool {
	for _, o := range a.Overrides {
		if !slices.Contains(active, o) {
			return false
		}
	}
	return true
}

// Apply applies a single assignment to d, honoring the active overrides.
func Apply(d *datastore.DataStore, a Assignment, active []string) {
	if !a.appliesTo(active) {
		return
	}

	switch a.Op {
	case OpWeakDefault, OpWeakerDefault:
		d.SetDefault(a.Name, a.Value)
	case OpAppend, OpDotAppend:
		current, _ := d.Get(a.Name)
		d.Set(a.Name, joinTokens(current, a.Value))
	case OpPrepend, OpDotPrepend:
		current, _ := d.Get(a.Name)
		d.Set(a.Name, joinTokens(a.Value, current))
	case OpRemove:
		current, ok := d.Get(a.Name)
		if !ok {
			return
		}
		remove := strings.Fields(a.Value)
		var kept []string
		for _, token := range strings.Fields(current) {
			if !slices.Contains(remove, token) {
				kept = append(kept, token)
			}
		}
		d.Set(a.Name, strings.Join(kept, " "))
	case OpUnset:
		d.Del(a.Name)
	default:
		d.Set(a.Name, a.Value)
	}
}

// ApplyAll applies assignments in order. The active override list starts
// from extra and follows the OVERRIDES variable as assignments change it,
// so qualified statements after an OVERRIDES update see the new list.
func ApplyAll(d *datastore.DataStore, assignments []Assignment, extra []string) {
	active := activeOverrides(d, extra)
	for _, a := range assignments {
		Apply(d, a, active)
		if a.Name == "OVERRIDES" {
			active = activeOverrides(d, extra)
		}
	}
}

// activeOverrides merges the explicit extra list with the store's current
// OVERRIDES value.
func activeOverrides(d *datastore.DataStore, extra []string) []string {
	active := slices.Clone(extra)
	if value, ok := d.Get("OVERRIDES"); ok {
		for _, o := range ParseOverrides(d.Expand(value)) {
			if !slices.Contains(active, o) {
				active = append(active, o)
			}
		}
	}
	return active
}

// joinTokens concatenates two value fragments with a separating space when
// both are non-empty.
func joinTokens(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + " " + right
}
