package generator

import (
	"strings"

	"local-business-dashboard/business-svc/internal/domain"
)

const (
	namePlaceholder     = "{name}"
	locationPlaceholder = "{location}"
)

var templates = [...]string{
	"Discover Why {name} in {location} is the Talk of the Town in 2025",
	"Top Reasons to Visit {name} in {location} This Year",
	"How {name} is Revolutionizing {location}'s Local Scene",
	"Why {name} is {location}'s Hidden Gem for 2025",
	"The Ultimate Guide to {name} in {location}",
	"Experience the Best of {location} at {name}",
	"Why Everyone is Talking About {name} in {location}",
	"Unveiling the Secrets Behind {name} in {location}",
	"What Makes {name} in {location} Stand Out in 2025",
	"Your Go-To Spot: {name} in {location}",
	"Why {name} is {location}'s sweetest spot in 2025",
}

// Templates returns a copy of the headline templates in selection order.
func Templates() []string {
	out := make([]string, len(templates))
	copy(out, templates[:])
	return out
}

type HeadlineGenerator struct {
	src Source
}

func NewHeadlineGenerator(src Source) *HeadlineGenerator {
	if src == nil {
		src = DefaultSource()
	}
	return &HeadlineGenerator{src: src}
}

// Generate renders a uniformly chosen template. name and location are
// inserted verbatim.
func (g *HeadlineGenerator) Generate(name, location string) domain.Headline {
	idx := pick(g.src, len(templates))
	return domain.Headline{
		Text:          Render(templates[idx], name, location),
		TemplateIndex: idx,
	}
}

// Render substitutes every placeholder occurrence in tpl.
func Render(tpl, name, location string) string {
	out := strings.ReplaceAll(tpl, namePlaceholder, name)
	return strings.ReplaceAll(out, locationPlaceholder, location)
}
