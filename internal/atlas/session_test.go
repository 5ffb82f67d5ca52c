package atlas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	in := &Session{
		SavedIDs: []string{"chesapeake-bay", "oslofjord"},
		Discovered: []Estuary{
			{ID: "ha-long-bay", Name: "Ha Long Bay", Coordinates: Coordinates{Lat: 20.9, Lng: 107.1}},
		},
	}
	require.NoError(t, SaveSession(path, in))

	out, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, in.SavedIDs, out.SavedIDs)
	require.Len(t, out.Discovered, 1)
	assert.Equal(t, "ha-long-bay", out.Discovered[0].ID)
	assert.False(t, out.UpdatedAt.IsZero())
}

func TestLoadSessionMissingFile(t *testing.T) {
	s, err := LoadSession(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, s.SavedIDs)
	assert.Empty(t, s.Discovered)
}

func TestLoadSessionCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadSession(path)
	assert.Error(t, err)
}
