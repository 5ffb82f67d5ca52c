package atlas

// Ordered category tiers. Ranks are total: every value, including the empty
// string and anything unrecognized from the content service, maps to a
// defined rank so sorting and marker sizing never hit an undefined case.

type ScaleTier string

const (
	ScaleSmall   ScaleTier = "Small"
	ScaleMedium  ScaleTier = "Medium"
	ScaleLarge   ScaleTier = "Large"
	ScaleMassive ScaleTier = "Massive"
)

// Rank orders scale tiers; unknown tiers rank as Small.
func (t ScaleTier) Rank() int {
	switch t {
	case ScaleMassive:
		return 4
	case ScaleLarge:
		return 3
	case ScaleMedium:
		return 2
	default:
		return 1
	}
}

// MarkerRadius is the base marker radius in projection pixels for this tier.
func (t ScaleTier) MarkerRadius() int {
	switch t {
	case ScaleMassive:
		return 12
	case ScaleLarge:
		return 9
	case ScaleMedium:
		return 6
	default:
		return 4
	}
}

type PopulationTier string

const (
	PopulationLow    PopulationTier = "Low"
	PopulationMedium PopulationTier = "Medium"
	PopulationHigh   PopulationTier = "High"
)

// Rank orders population tiers; unknown tiers rank as Low.
func (t PopulationTier) Rank() int {
	switch t {
	case PopulationHigh:
		return 3
	case PopulationMedium:
		return 2
	default:
		return 1
	}
}

type BiodiversityTier string

const (
	BiodiversityLow      BiodiversityTier = "Low"
	BiodiversityMedium   BiodiversityTier = "Medium"
	BiodiversityHigh     BiodiversityTier = "High"
	BiodiversityVeryHigh BiodiversityTier = "Very High"
)

// Rank orders biodiversity tiers; unknown tiers rank as Medium.
func (t BiodiversityTier) Rank() int {
	switch t {
	case BiodiversityVeryHigh:
		return 4
	case BiodiversityHigh:
		return 3
	case BiodiversityLow:
		return 1
	default:
		return 2
	}
}
