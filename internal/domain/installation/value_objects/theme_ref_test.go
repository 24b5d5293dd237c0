package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantDir string
		wantErr bool
	}{
		{
			name:    "catalog ref",
			input:   "catalog:thm_abc123",
			want:    "catalog:thm_abc123",
			wantDir: "thm_abc123",
		},
		{
			name:    "custom ref",
			input:   "custom:cth_xyz789",
			want:    "custom:cth_xyz789",
			wantDir: "custom-cth_xyz789",
		},
		{
			name:    "missing kind",
			input:   "thm_abc123",
			wantErr: true,
		},
		{
			name:    "unknown kind",
			input:   "builtin:thm_abc123",
			wantErr: true,
		},
		{
			name:    "empty sid",
			input:   "catalog:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseThemeRef(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.String())
			assert.Equal(t, tt.wantDir, ref.InstallDirName())
		})
	}
}

func TestThemeRef_IsZero(t *testing.T) {
	var zero ThemeRef
	assert.True(t, zero.IsZero())

	ref, err := NewCatalogRef("thm_abc")
	require.NoError(t, err)
	assert.False(t, ref.IsZero())
	assert.False(t, ref.IsCustom())

	custom, err := NewCustomRef("cth_abc")
	require.NoError(t, err)
	assert.True(t, custom.IsCustom())
}
