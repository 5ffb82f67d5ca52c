package genai

import (
	"context"
	"fmt"
	"strings"

	"estuatlas/internal/atlas"
)

// FetchDetails asks the service for the detail-panel content of one
// estuary. A nil result with an error means the caller should show its
// fallback message.
func (c *Client) FetchDetails(ctx context.Context, name string) (*atlas.Details, error) {
	text, err := c.generate(ctx, detailsPrompt(name))
	if err != nil {
		return nil, err
	}
	var d atlas.Details
	if err := salvageJSON(text, &d); err != nil {
		return nil, err
	}
	if d.Biodiversity == "" && d.EcologicalSignificance == "" {
		return nil, fmt.Errorf("details response missing required fields")
	}
	return &d, nil
}

type quizResponse struct {
	Questions []atlas.QuizQuestion `json:"questions"`
}

// FetchQuiz generates a three-question quiz for one estuary. Responses
// with the wrong shape (no questions, out-of-range answer index) are
// treated as a total failure rather than partially salvaged.
func (c *Client) FetchQuiz(ctx context.Context, name string) (*atlas.Quiz, error) {
	text, err := c.generate(ctx, quizPrompt(name))
	if err != nil {
		return nil, err
	}
	var qr quizResponse
	if err := salvageJSON(text, &qr); err != nil {
		return nil, err
	}
	if len(qr.Questions) == 0 {
		return nil, fmt.Errorf("quiz response contained no questions")
	}
	for i, q := range qr.Questions {
		if len(q.Options) < 2 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("quiz question %d is malformed", i+1)
		}
	}
	return &atlas.Quiz{
		SubjectID: atlas.NormalizeID(name),
		Questions: qr.Questions,
	}, nil
}

type searchRecord struct {
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	ShortDescription   string  `json:"shortDescription"`
	Scale              string  `json:"scale"`
	PopulationDensity  string  `json:"populationDensity"`
	BiodiversityRating string  `json:"biodiversityRating"`
}

type searchResponse struct {
	Estuaries []searchRecord `json:"estuaries"`
}

// SearchEstuaries runs the census: an open-ended lookup of estuarine
// systems matching the query. Records are normalized for merging (derived
// ID, placeholder image, tier defaults) and anything without a plausible
// coordinate is dropped. An empty slice is a valid answer.
func (c *Client) SearchEstuaries(ctx context.Context, query string) ([]atlas.Estuary, error) {
	text, err := c.generate(ctx, searchPrompt(query))
	if err != nil {
		return nil, err
	}
	var sr searchResponse
	if err := salvageJSON(text, &sr); err != nil {
		return nil, err
	}

	out := make([]atlas.Estuary, 0, len(sr.Estuaries))
	for _, r := range sr.Estuaries {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		coord := atlas.Coordinates{Lat: r.Lat, Lng: r.Lng}
		if !coord.Valid() {
			continue
		}
		e := atlas.Estuary{
			ID:               atlas.NormalizeID(r.Name),
			Name:             r.Name,
			Location:         r.Location,
			Coordinates:      coord,
			ShortDescription: r.ShortDescription,
			Scale:            atlas.ScaleTier(r.Scale),
			Image:            atlas.PlaceholderImage(r.Name),
		}
		e.PopulationDensity = atlas.PopulationTier(r.PopulationDensity)
		if e.PopulationDensity == "" {
			e.PopulationDensity = atlas.PopulationMedium
		}
		e.BiodiversityRating = atlas.BiodiversityTier(r.BiodiversityRating)
		if e.BiodiversityRating == "" {
			e.BiodiversityRating = atlas.BiodiversityMedium
		}
		out = append(out, e)
	}
	return out, nil
}
