package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chesapeake Bay", "chesapeake-bay"},
		{"Río de la Plata", "r-o-de-la-plata"},
		{"  Thames   Estuary  ", "thames-estuary"},
		{"St. Lawrence / Gulf", "st-lawrence-gulf"},
		{"ALREADY-OK", "already-ok"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeID(c.in), "input %q", c.in)
	}
}

func TestPlaceholderImage(t *testing.T) {
	got := PlaceholderImage("Pearl River Delta")
	assert.Equal(t, "https://picsum.photos/seed/PearlRiverDelta/400/300", got)

	// deterministic
	assert.Equal(t, got, PlaceholderImage("Pearl River Delta"))
}
