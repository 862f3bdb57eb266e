package sitedata

import (
	"encoding/json"

	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
)

// Fallback returns the deterministic render payload substituted when the
// content service is unreachable or reports not-found. Public pages render
// this instead of a blank or error screen; only the routing key varies.
func Fallback(key id.RoutingKey) *models.RenderPayload {
	name := "Rescue Organization"
	if !key.IsEmpty() {
		name = key.String()
	}

	return &models.RenderPayload{
		Design: models.Design{
			PrimaryColor:    "#2b6cb0",
			SecondaryColor:  "#ed8936",
			BackgroundColor: "#ffffff",
			TextColor:       "#1a202c",
			HeadingFont:     "Georgia, serif",
			BodyFont:        "Helvetica, Arial, sans-serif",
		},
		Organization: models.OrgSummary{
			Name:    name,
			Tagline: "Every animal deserves a home",
		},
		Page: models.Page{
			Slug:  key.String(),
			Title: name,
			Sections: []models.SectionDescriptor{
				{ID: "fallback-header", Type: "header", SortOrder: 0},
				{ID: "fallback-hero", Type: "hero", SortOrder: 1, Data: rawJSON(map[string]string{
					"headline":    "Welcome to " + name,
					"subheadline": "Our full site is loading. Meet our animals and get in touch.",
				})},
				{ID: "fallback-about", Type: "about", SortOrder: 2, Data: rawJSON(map[string]string{
					"heading": "About Us",
					"body":    "We are a rescue organization dedicated to finding loving homes for animals in need.",
				})},
				{ID: "fallback-contact", Type: "contact", SortOrder: 3},
				{ID: "fallback-footer", Type: "footer", SortOrder: 4},
			},
		},
	}
}

func rawJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		// Marshal of map[string]string cannot fail.
		return nil
	}
	return data
}
