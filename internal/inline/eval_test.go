package inline

import (
	"reflect"
	"testing"

	"github.com/catalystcommunity/bbvar/internal/datastore"
)

func testEvaluator() *Evaluator {
	return NewEvaluator(datastore.NewFromMap(map[string]string{
		"DISTRO_FEATURES": "systemd pam ipv6",
		"PACKAGECONFIG":   "udev openssl",
		"TUNE_FEATURES":   "arm neon vfp",
	}))
}

func TestEvaluateContains(t *testing.T) {
	e := testEvaluator()

	tests := []struct {
		name     string
		expr     string
		expected string
	}{
		{
			"wrapped, token present",
			"${@bb.utils.contains('DISTRO_FEATURES', 'systemd', 'yes', 'no', d)}",
			"yes",
		},
		{
			"bare, token present",
			"bb.utils.contains('DISTRO_FEATURES', 'pam', 'found', 'missing', d)",
			"found",
		},
		{
			"token missing",
			"${@bb.utils.contains('DISTRO_FEATURES', 'bluetooth', 'yes', 'no', d)}",
			"no",
		},
		{
			"empty false value",
			"${@bb.utils.contains('DISTRO_FEATURES', 'bluetooth', 'bluez5', '', d)}",
			"",
		},
		{
			"multi-token true value",
			"${@bb.utils.contains('DISTRO_FEATURES', 'pam', 'libpam libpam-runtime', '', d)}",
			"libpam libpam-runtime",
		},
		{
			"packageconfig pattern",
			"${@bb.utils.contains('PACKAGECONFIG', 'openssl', 'yes', 'no', d)}",
			"yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Evaluate(tt.expr)
			if !ok {
				t.Fatalf("Expected expression to be evaluable: %s", tt.expr)
			}
			if got != tt.expected {
				t.Errorf("Evaluate(%s) = %q, expected %q", tt.expr, got, tt.expected)
			}
		})
	}
}

func TestEvaluateContainsAny(t *testing.T) {
	e := testEvaluator()

	got, ok := e.Evaluate("${@bb.utils.contains_any('DISTRO_FEATURES', 'wayland systemd', 'graphical', 'headless', d)}")
	if !ok || got != "graphical" {
		t.Errorf("Expected %q, got %q (ok=%v)", "graphical", got, ok)
	}

	got, ok = e.Evaluate("${@bb.utils.contains_any('DISTRO_FEATURES', 'wayland x11', 'graphical', 'headless', d)}")
	if !ok || got != "headless" {
		t.Errorf("Expected %q, got %q (ok=%v)", "headless", got, ok)
	}
}

func TestEvaluateFilter(t *testing.T) {
	e := testEvaluator()

	tests := []struct {
		name     string
		expr     string
		expected string
	}{
		{"some match", "${@bb.utils.filter('DISTRO_FEATURES', 'systemd ipv6 bluetooth', d)}", "systemd ipv6"},
		{"no match", "${@bb.utils.filter('DISTRO_FEATURES', 'bluetooth selinux', d)}", ""},
		{"all match", "${@bb.utils.filter('DISTRO_FEATURES', 'systemd pam', d)}", "systemd pam"},
		{"single token", "${@bb.utils.filter('DISTRO_FEATURES', 'pam', d)}", "pam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Evaluate(tt.expr)
			if !ok {
				t.Fatalf("Expected expression to be evaluable: %s", tt.expr)
			}
			if got != tt.expected {
				t.Errorf("Evaluate(%s) = %q, expected %q", tt.expr, got, tt.expected)
			}
		})
	}
}

func TestEvaluateNotHandled(t *testing.T) {
	e := testEvaluator()

	tests := []struct {
		name string
		expr string
	}{
		{"unknown variable", "${@bb.utils.contains('UNKNOWN_VAR', 'value', 'yes', 'no', d)}"},
		{"unknown function", "${@bb.utils.unknown_func('arg1', 'arg2', d)}"},
		{"arbitrary python", "${@d.getVar('PN') + '-native'}"},
		{"too few arguments", "${@bb.utils.contains('DISTRO_FEATURES', 'systemd', d)}"},
		{"missing close paren", "${@bb.utils.contains('DISTRO_FEATURES', 'systemd', 'a', 'b', d}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := e.Evaluate(tt.expr); ok {
				t.Errorf("Expected %s to be unevaluable, got %q", tt.expr, got)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"plain quoted args",
			"'VAR', 'item', 'true', 'false', d",
			[]string{"VAR", "item", "true", "false", "d"},
		},
		{
			"empty quoted arg",
			"'DISTRO_FEATURES', 'systemd', 'hwdb', '', d",
			[]string{"DISTRO_FEATURES", "systemd", "hwdb", "", "d"},
		},
		{
			"comma inside quotes",
			"'VAR', 'a,b', d",
			[]string{"VAR", "a,b", "d"},
		},
		{
			"nested call kept whole",
			"'VAR', f(x, y), d",
			[]string{"VAR", "f(x, y)", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitArgs(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitArgs(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
