package domain

import "time"

const (
	EventBusinessDataGenerated = "business_data_generated"
	EventHeadlineRegenerated   = "headline_regenerated"
)

// GenerationEvent mirrors the message business-svc publishes.
type GenerationEvent struct {
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	TemplateIndex int       `json:"template_index"`
	Rating        *float64  `json:"rating,omitempty"`
	Reviews       *int      `json:"reviews,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e GenerationEvent) Known() bool {
	return e.Type == EventBusinessDataGenerated || e.Type == EventHeadlineRegenerated
}
