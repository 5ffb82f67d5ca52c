package atlas

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ViewMode selects which slice of the working set the UI is showing.
type ViewMode string

const (
	ViewMap   ViewMode = "map"
	ViewList  ViewMode = "list"
	ViewSaved ViewMode = "saved"
)

// SortOption selects the comparator used to order the derived view.
type SortOption string

const (
	SortByName         SortOption = "name"
	SortByScale        SortOption = "scale"
	SortByPopulation   SortOption = "population"
	SortByBiodiversity SortOption = "biodiversity"
)

// Next cycles through the available comparators in a fixed order.
func (s SortOption) Next() SortOption {
	switch s {
	case SortByName:
		return SortByScale
	case SortByScale:
		return SortByPopulation
	case SortByPopulation:
		return SortByBiodiversity
	default:
		return SortByName
	}
}

// Label is the human-readable name shown in the sort selector.
func (s SortOption) Label() string {
	switch s {
	case SortByScale:
		return "System Scale"
	case SortByPopulation:
		return "Population Impact"
	case SortByBiodiversity:
		return "Biodiversity Index"
	default:
		return "Name (A-Z)"
	}
}

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// DeriveView computes the ordered subset of the working set to display.
// Saved mode restricts to saved IDs first, then a non-blank query keeps
// entities whose name or location contains it case-insensitively, then the
// survivors are stably sorted by the selected comparator. The input slice is
// never mutated.
func DeriveView(working []Estuary, mode ViewMode, saved map[string]bool, query string, sortOpt SortOption) []Estuary {
	out := make([]Estuary, 0, len(working))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, e := range working {
		if mode == ViewSaved && !saved[e.ID] {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Location), q) {
			continue
		}
		out = append(out, e)
	}

	// Stable so equal keys keep their working-set order.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortOpt {
		case SortByScale:
			return a.Scale.Rank() > b.Scale.Rank()
		case SortByPopulation:
			return a.PopulationDensity.Rank() > b.PopulationDensity.Rank()
		case SortByBiodiversity:
			return a.BiodiversityRating.Rank() > b.BiodiversityRating.Rank()
		default:
			return nameCollator.CompareString(a.Name, b.Name) < 0
		}
	})
	return out
}
