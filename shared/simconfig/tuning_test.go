package simconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTuning_OverridesOnlyGivenKeys(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader(`
[character]
speed = 10
jump_on_hold = true

[sim]
ticks_per_second = 60
`))
	require.NoError(t, err)

	assert.Equal(t, 10.0, tuning.Character.Speed)
	assert.True(t, tuning.Character.JumpOnHold)
	assert.Equal(t, 60, tuning.Sim.TicksPerSecond)

	assert.Equal(t, Character.Gravity, tuning.Character.Gravity)
	assert.Equal(t, Character.Width, tuning.Character.Width)
	assert.Equal(t, Sim.CellSize, tuning.Sim.CellSize)
}

func TestDecodeTuning_Empty(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestDecodeTuning_Errors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		is   error
	}{
		{"unknown key", "[character]\nsped = 3\n", ErrUnknownTuningKey},
		{"bad syntax", "[character\n", nil},
		{"zero tick rate", "[sim]\nticks_per_second = 0\n", nil},
		{"inset wider than sprite", "[character]\ncollide_inset_x = 200\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTuning(strings.NewReader(tt.toml))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte("[character]\ngravity = 9\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 9.0, tuning.Character.Gravity)

	_, err = LoadTuning(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
