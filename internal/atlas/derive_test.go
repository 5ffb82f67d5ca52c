package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deriveFixture() []Estuary {
	return []Estuary{
		{ID: "a", Name: "Amazon Mouth", Location: "Brazil", Scale: ScaleMassive, PopulationDensity: PopulationLow, BiodiversityRating: BiodiversityVeryHigh},
		{ID: "b", Name: "Baltic Lagoon", Location: "Poland", Scale: ScaleMedium, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityMedium},
		{ID: "c", Name: "Cardiff Bay", Location: "Wales, UK", Scale: ScaleSmall, PopulationDensity: PopulationHigh, BiodiversityRating: BiodiversityLow},
		{ID: "d", Name: "Delta Unset", Location: "Nowhere"},
	}
}

func TestDeriveViewQueryMatchesNameAndLocation(t *testing.T) {
	working := deriveFixture()

	byName := DeriveView(working, ViewList, nil, "baltic", SortByName)
	require.Len(t, byName, 1)
	assert.Equal(t, "b", byName[0].ID)

	byLocation := DeriveView(working, ViewList, nil, "  WALES ", SortByName)
	require.Len(t, byLocation, 1)
	assert.Equal(t, "c", byLocation[0].ID)

	assert.Empty(t, DeriveView(working, ViewList, nil, "atlantis", SortByName))
}

func TestDeriveViewSeedQuery(t *testing.T) {
	got := DeriveView(Seed(), ViewList, nil, "norw", SortByName)
	require.NotEmpty(t, got)
	for _, e := range got {
		assert.Contains(t, e.Location, "Norway")
	}
}

func TestDeriveViewSavedMode(t *testing.T) {
	working := deriveFixture()

	saved := map[string]bool{"c": true, "a": true}
	got := DeriveView(working, ViewSaved, saved, "", SortByName)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	// nothing saved means an empty saved view regardless of query
	assert.Empty(t, DeriveView(working, ViewSaved, nil, "", SortByName))
	assert.Empty(t, DeriveView(working, ViewSaved, map[string]bool{}, "bay", SortByName))
}

func TestDeriveViewSortByScaleDescending(t *testing.T) {
	got := DeriveView(deriveFixture(), ViewList, nil, "", SortByScale)
	require.Len(t, got, 4)
	assert.Equal(t, "a", got[0].ID) // Massive first
	assert.Equal(t, "b", got[1].ID)
	// Small and unset both rank 1; stable sort keeps working-set order
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, "d", got[3].ID)
}

func TestDeriveViewSortStability(t *testing.T) {
	// b and c tie on population rank; order must follow the input
	got := DeriveView(deriveFixture(), ViewList, nil, "", SortByPopulation)
	require.Len(t, got, 4)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	working := deriveFixture()
	before := make([]Estuary, len(working))
	copy(before, working)

	DeriveView(working, ViewList, nil, "", SortByBiodiversity)
	assert.Equal(t, before, working)
}

func TestSortOptionCycle(t *testing.T) {
	s := SortByName
	seen := map[SortOption]bool{}
	for i := 0; i < 4; i++ {
		seen[s] = true
		s = s.Next()
	}
	assert.Equal(t, SortByName, s)
	assert.Len(t, seen, 4)
}
