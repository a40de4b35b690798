package domain

// Suggestion is one validated SONG line from the generative service.
type Suggestion struct {
	Artist    string        `json:"artist"`
	Title     string        `json:"title"`
	Year      string        `json:"year"`
	Obscurity int           `json:"obscurity"`
	Weirdness int           `json:"weirdness"`
	Rationale string        `json:"rationale"`
	Match     *CatalogMatch `json:"match,omitempty"`
}

// CatalogMatch links a suggestion to a catalog track found by search.
type CatalogMatch struct {
	ID    string  `json:"id"`
	URI   string  `json:"uri,omitempty"`
	URL   string  `json:"url,omitempty"`
	Score float64 `json:"score"`
}

// ParsedResponse is the structured view of one raw service reply.
type ParsedResponse struct {
	Persona     string       `json:"persona"`
	Logic       string       `json:"logic"`
	Future      string       `json:"future"`
	Suggestions []Suggestion `json:"suggestions"`
}

// SuggestionResult is returned to callers of the suggestion pipeline.
type SuggestionResult struct {
	PlaylistName     string       `json:"playlistName"`
	UserAnalysis     string       `json:"userAnalysis"`
	UserPersonality  string       `json:"userPersonality"`
	LogicApproach    string       `json:"logicApproach"`
	FutureAdaptation string       `json:"futureAdaptation"`
	Suggestions      []Suggestion `json:"suggestions"`
}
