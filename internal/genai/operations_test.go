package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estuatlas/internal/atlas"
)

// fakeService stands in for the generateContent endpoint, returning the
// given text as the single candidate.
func fakeService(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		resp := apiResponse{
			Candidates: []apiCandidate{
				{Content: apiContent{Parts: []apiPart{{Text: text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(srv *httptest.Server) *Client {
	return &Client{
		APIKey:     "test-key",
		Model:      "gemini-2.5-flash",
		Endpoint:   srv.URL,
		HTTPClient: srv.Client(),
	}
}

func TestClientUnavailableWithoutKey(t *testing.T) {
	c := &Client{Model: "gemini-2.5-flash", Endpoint: "http://unused", HTTPClient: http.DefaultClient}
	assert.False(t, c.Available())

	_, err := c.FetchDetails(context.Background(), "Chesapeake Bay")
	assert.Error(t, err)
}

func TestFetchDetails(t *testing.T) {
	srv := fakeService(t, `{
		"biodiversity": "Blue crabs and oysters",
		"ecologicalSignificance": "Largest estuary in the US",
		"conservationStatus": "Recovering",
		"funFact": "Its name means great shellfish bay"
	}`)
	defer srv.Close()

	d, err := testClient(srv).FetchDetails(context.Background(), "Chesapeake Bay")
	require.NoError(t, err)
	assert.Equal(t, "Blue crabs and oysters", d.Biodiversity)
	assert.Equal(t, "Recovering", d.ConservationStatus)
}

func TestFetchDetailsRejectsEmptyPayload(t *testing.T) {
	srv := fakeService(t, `{"funFact": "only a fact"}`)
	defer srv.Close()

	_, err := testClient(srv).FetchDetails(context.Background(), "Somewhere")
	assert.Error(t, err)
}

func TestFetchQuiz(t *testing.T) {
	srv := fakeService(t, `{"questions": [
		{"question": "Which ocean borders it?", "options": ["Atlantic", "Pacific"], "correctAnswer": 0, "explanation": "East coast."},
		{"question": "Main river?", "options": ["Susquehanna", "Thames", "Nile"], "correctAnswer": 0, "explanation": ""}
	]}`)
	defer srv.Close()

	q, err := testClient(srv).FetchQuiz(context.Background(), "Chesapeake Bay")
	require.NoError(t, err)
	assert.Equal(t, "chesapeake-bay", q.SubjectID)
	require.Len(t, q.Questions, 2)
	assert.Equal(t, 0, q.Questions[0].CorrectAnswer)
}

func TestFetchQuizRejectsMalformedQuestions(t *testing.T) {
	cases := []string{
		`{"questions": []}`,
		`{"questions": [{"question": "q", "options": ["only one"], "correctAnswer": 0}]}`,
		`{"questions": [{"question": "q", "options": ["a", "b"], "correctAnswer": 5}]}`,
	}
	for i, payload := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			srv := fakeService(t, payload)
			defer srv.Close()
			_, err := testClient(srv).FetchQuiz(context.Background(), "X")
			assert.Error(t, err)
		})
	}
}

func TestSearchEstuaries(t *testing.T) {
	srv := fakeService(t, `{"estuaries": [
		{"name": "Ha Long Bay", "location": "Vietnam", "lat": 20.91, "lng": 107.18,
		 "shortDescription": "Limestone karst bay", "scale": "Large",
		 "populationDensity": "High", "biodiversityRating": "Very High"},
		{"name": "", "location": "nameless", "lat": 1, "lng": 1},
		{"name": "Bad Coords", "location": "nowhere", "lat": 999, "lng": 0},
		{"name": "Sparse Entry", "location": "somewhere", "lat": 10, "lng": 10}
	]}`)
	defer srv.Close()

	got, err := testClient(srv).SearchEstuaries(context.Background(), "south east asia")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ha-long-bay", got[0].ID)
	assert.Equal(t, atlas.ScaleLarge, got[0].Scale)
	assert.Equal(t, atlas.BiodiversityVeryHigh, got[0].BiodiversityRating)
	assert.Contains(t, got[0].Image, "picsum.photos/seed/HaLongBay")

	// missing tiers fall back to Medium
	assert.Equal(t, atlas.PopulationMedium, got[1].PopulationDensity)
	assert.Equal(t, atlas.BiodiversityMedium, got[1].BiodiversityRating)
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(apiResponse{
			Error: &apiError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchDetails(context.Background(), "Anywhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
}
