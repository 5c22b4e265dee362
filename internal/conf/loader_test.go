package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr bool
		errMsg  string
		check   func(t *testing.T, value string, ok bool)
		varName string
	}{
		{
			name:    "conf file",
			file:    "local.conf",
			content: "MACHINE = \"qemux86-64\"\nDISTRO_FEATURES = \"systemd pam usrmerge\"\n",
			varName: "DISTRO_FEATURES",
			check: func(t *testing.T, value string, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, "systemd pam usrmerge", value)
			},
		},
		{
			name:    "yaml file",
			file:    "vars.yaml",
			content: "DISTRO_FEATURES: systemd pam usrmerge\nMACHINE: qemux86-64\n",
			varName: "MACHINE",
			check: func(t *testing.T, value string, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, "qemux86-64", value)
			},
		},
		{
			name:    "malformed conf",
			file:    "broken.conf",
			content: "this is not an assignment\n",
			wantErr: true,
			errMsg:  "line 1",
		},
		{
			name:    "malformed yaml",
			file:    "broken.yaml",
			content: "::not yaml::\n- nope",
			wantErr: true,
			errMsg:  "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)
			d, err := Load(path, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, d)
			value, ok := d.Get(tt.varName)
			tt.check(t, value, ok)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.conf"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variable file not found")
}

func TestLoadFromReaderAppliesInOrder(t *testing.T) {
	input := "DISTRO_FEATURES = \"systemd\"\n" +
		"DISTRO_FEATURES:append = \" pam\"\n" +
		"DISTRO_FEATURES:remove = \"x11\"\n"

	d, err := LoadFromReader(strings.NewReader(input), nil)
	require.NoError(t, err)

	value, ok := d.Get("DISTRO_FEATURES")
	require.True(t, ok)
	assert.Equal(t, "systemd pam", value)
}

func TestLoadWithExtraOverrides(t *testing.T) {
	path := writeTempFile(t, "machine.conf",
		"IMAGE_FSTYPES = \"tar.gz\"\nIMAGE_FSTYPES:qemuarm = \"ext4\"\n")

	d, err := Load(path, []string{"qemuarm"})
	require.NoError(t, err)

	value, _ := d.Get("IMAGE_FSTYPES")
	assert.Equal(t, "ext4", value)
}
