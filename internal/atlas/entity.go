package atlas

// Coordinates is a geographic point in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies inside the WGS84 envelope.
// NaN fails both comparisons, so non-finite values are rejected too.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Estuary is one estuarine system in the working set.
type Estuary struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Location         string      `json:"location"`
	Coordinates      Coordinates `json:"coordinates"`
	ShortDescription string      `json:"shortDescription"`
	Image            string      `json:"image,omitempty"`

	Scale              ScaleTier        `json:"scale,omitempty"`
	PopulationDensity  PopulationTier   `json:"populationDensity,omitempty"`
	BiodiversityRating BiodiversityTier `json:"biodiversityRating,omitempty"`

	// Detail fields; usually empty at seed time and filled by the detail
	// panel from the content service, never written back to the working set.
	Biodiversity           string `json:"biodiversity,omitempty"`
	ConservationStatus     string `json:"conservationStatus,omitempty"`
	EcologicalSignificance string `json:"ecologicalSignificance,omitempty"`
}

// HasStaticDetails reports whether the entity already carries enough
// pre-baked content to skip the detail fetch.
func (e Estuary) HasStaticDetails() bool {
	return e.Biodiversity != "" && e.EcologicalSignificance != ""
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated knowledge check for one estuary. It lives only for
// the duration of the quiz interaction.
type Quiz struct {
	SubjectID string         `json:"estuaryId"`
	Questions []QuizQuestion `json:"questions"`
}

// Details is the content-service payload shown in the detail panel.
type Details struct {
	Biodiversity           string `json:"biodiversity"`
	EcologicalSignificance string `json:"ecologicalSignificance"`
	ConservationStatus     string `json:"conservationStatus"`
	FunFact                string `json:"funFact"`
}
