package domain

import "time"

type BusinessQuery struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// BusinessData is the response of the primary fetch. Rating and Reviews are
// only ever produced together here.
type BusinessData struct {
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Headline string  `json:"headline"`
}

type HeadlineResponse struct {
	Headline string `json:"headline"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Headline carries the index of the template it was rendered from so that
// usage statistics can be aggregated; only Text reaches API callers.
type Headline struct {
	Text          string
	TemplateIndex int
}

const (
	EventBusinessDataGenerated = "business_data_generated"
	EventHeadlineRegenerated   = "headline_regenerated"
)

type GenerationEvent struct {
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	TemplateIndex int       `json:"template_index"`
	Rating        *float64  `json:"rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Complete reports whether both fields are present. Whitespace-only values
// count as present.
func (q BusinessQuery) Complete() bool {
	return q.Name != "" && q.Location != ""
}
