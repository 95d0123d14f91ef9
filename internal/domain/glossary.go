package domain

import "time"

// GlossaryTerm is one NWS glossary entry. Definitions may contain HTML.
type GlossaryTerm struct {
	RetrievedAt time.Time `json:"retrieved_at"`
	Term        *string   `json:"term"`
	Definition  *string   `json:"definition"`
}

// NormalizeGlossary reads the /glossary body.
func NormalizeGlossary(body Object, retrievedAt time.Time) []GlossaryTerm {
	entries := body.Objects("glossary")
	terms := make([]GlossaryTerm, 0, len(entries))
	for _, e := range entries {
		terms = append(terms, GlossaryTerm{
			RetrievedAt: retrievedAt,
			Term:        e.String("term"),
			Definition:  e.String("definition"),
		})
	}
	return terms
}
