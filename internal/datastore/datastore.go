// Package datastore implements an in-memory build-variable store with
// BitBake-style ${NAME} expansion and read/write operation tracking.
package datastore

import (
	"sort"
	"strings"
)

// maxExpandPasses bounds expansion so self-referential values terminate.
const maxExpandPasses = 100

// WriteOp records a single write to the store.
type WriteOp struct {
	Name  string
	Value string
}

// DataStore maps variable names to string values. Absence of a variable is
// a normal outcome, never an error. A DataStore is not safe for concurrent
// use.
type DataStore struct {
	vars     map[string]string
	readLog  []string
	writeLog []WriteOp
}

// New returns an empty store.
func New() *DataStore {
	return &DataStore{vars: make(map[string]string)}
}

// NewFromMap returns a store pre-populated from vars.
func NewFromMap(vars map[string]string) *DataStore {
	d := New()
	for name, value := range vars {
		d.vars[name] = value
	}
	return d
}

// Get returns the raw stored value. It does not expand and does not touch
// the read log.
func (d *DataStore) Get(name string) (string, bool) {
	value, ok := d.vars[name]
	return value, ok
}

// GetVar returns the value of name, recording the lookup in the read log.
// When expand is true, ${NAME} references in the value are expanded.
func (d *DataStore) GetVar(name string, expand bool) (string, bool) {
	d.readLog = append(d.readLog, name)
	value, ok := d.vars[name]
	if !ok {
		return "", false
	}
	if expand {
		return d.Expand(value), true
	}
	return value, true
}

// Set assigns value to name, recording the write.
func (d *DataStore) Set(name, value string) {
	d.writeLog = append(d.writeLog, WriteOp{Name: name, Value: value})
	d.vars[name] = value
}

// SetDefault assigns value only if name is unset.
func (d *DataStore) SetDefault(name, value string) {
	if _, ok := d.vars[name]; !ok {
		d.Set(name, value)
	}
}

// Append appends suffix to the current value of name. An absent variable
// starts from the empty string.
func (d *DataStore) Append(name, suffix string) {
	d.Set(name, d.vars[name]+suffix)
}

// Prepend prepends prefix to the current value of name.
func (d *DataStore) Prepend(name, prefix string) {
	d.Set(name, prefix+d.vars[name])
}

// Del removes name from the store. Deleting an absent variable is a no-op.
func (d *DataStore) Del(name string) {
	delete(d.vars, name)
}

// Names returns all variable names in sorted order.
func (d *DataStore) Names() []string {
	names := make([]string, 0, len(d.vars))
	for name := range d.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables in the store.
func (d *DataStore) Len() int {
	return len(d.vars)
}

// ReadLog returns the names passed to GetVar, in call order.
func (d *DataStore) ReadLog() []string {
	return d.readLog
}

// WriteLog returns all writes made through Set, in call order.
func (d *DataStore) WriteLog() []WriteOp {
	return d.writeLog
}

// Expand substitutes ${NAME} references in s with stored values, repeating
// until no substitution applies so nested references resolve. References to
// unknown variables are left intact.
func (d *DataStore) Expand(s string) string {
	result := s
	for pass := 0; pass < maxExpandPasses; pass++ {
		next, changed := d.expandOnce(result)
		if !changed {
			return next
		}
		result = next
	}
	return result
}

// expandOnce performs a single left-to-right substitution pass and reports
// whether anything changed.
func (d *DataStore) expandOnce(s string) (string, bool) {
	var b strings.Builder
	changed := false
	pos := 0
	for {
		start := strings.Index(s[pos:], "${")
		if start < 0 {
			break
		}
		start += pos
		end := strings.Index(s[start+2:], "}")
		if end < 0 {
			break
		}
		end += start + 2
		name := s[start+2 : end]
		value, ok := d.vars[name]
		if !ok {
			// Unknown variable, leave the reference as-is.
			b.WriteString(s[pos : end+1])
			pos = end + 1
			continue
		}
		b.WriteString(s[pos:start])
		b.WriteString(value)
		changed = true
		pos = end + 1
	}
	b.WriteString(s[pos:])
	return b.String(), changed
}
