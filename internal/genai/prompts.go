package genai

import "fmt"

func detailsPrompt(name string) string {
	return fmt.Sprintf(`Provide detailed academic and ecological content for the %s estuary.
Focus on hydrodynamics, specific biodiversity lists (scientific names if possible), conservation status (IUCN categories), and anthropogenic impacts.
Keep it informative and structured.

Respond with ONLY valid JSON in this exact format:
{
  "biodiversity": "detailed flora and fauna",
  "ecologicalSignificance": "hydrographic and ecosystem services",
  "conservationStatus": "current status and threats",
  "funFact": "a unique scientific or historical fact"
}`, name)
}

func quizPrompt(name string) string {
	return fmt.Sprintf(`Generate a challenging 3-question multiple choice quiz about the %s estuary for a university-level audience.

Respond with ONLY valid JSON in this exact format:
{
  "questions": [
    {
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correctAnswer": 0,
      "explanation": "detailed explanation"
    }
  ]
}
Each question must have exactly 4 options; correctAnswer is the zero-based index of the correct option.`, name)
}

func searchPrompt(query string) string {
	return fmt.Sprintf(`Conduct an exhaustive academic census of estuarine systems located in or near "%s".

CRITICAL INSTRUCTIONS FOR RESEARCH PURPOSES:
1. QUANTITY: List as many valid systems as possible (target 30-50 if applicable to the region).
2. SCOPE: Do NOT limit to "major" deltas. You must include:
   - Minor river mouths
   - Coastal lagoons and barrier systems
   - Fjords, rias, and bays
   - Estuarine wetlands
3. PRECISION: Provide accurate coordinates.
4. If the query is a country (e.g., "Vietnam"), traverse the entire coastline from North to South.

Respond with ONLY valid JSON in this exact format:
{
  "estuaries": [
    {
      "name": "...",
      "location": "region/province/state within the country",
      "lat": 0.0,
      "lng": 0.0,
      "shortDescription": "hydrographic classification (e.g., 'Wave-dominated delta')",
      "scale": "Small|Medium|Large|Massive",
      "populationDensity": "Low|Medium|High",
      "biodiversityRating": "Low|Medium|High|Very High"
    }
  ]
}`, query)
}
