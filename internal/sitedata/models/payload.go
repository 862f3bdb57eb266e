// Package models defines the render payload: everything needed to draw one
// public page for a tenant. Payloads are immutable once received; consumers
// re-fetch to get a new version.
package models

import (
	"encoding/json"

	id "pawprint/pkg/domain"
)

// Design carries a tenant's theme tokens. Any field may be empty; the
// composition engine substitutes defaults for absent tokens.
type Design struct {
	PrimaryColor    string `json:"primary_color,omitempty"`
	SecondaryColor  string `json:"secondary_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	HeadingFont     string `json:"heading_font,omitempty"`
	BodyFont        string `json:"body_font,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
}

// OrgSummary is the organization block shared with every section renderer.
type OrgSummary struct {
	ID      id.OrgID `json:"id"`
	Name    string   `json:"name"`
	Tagline string   `json:"tagline,omitempty"`
	Email   string   `json:"email,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	City    string   `json:"city,omitempty"`
	State   string   `json:"state,omitempty"`
}

// SectionDescriptor is one visual block of a page. Type is an open string on
// the wire; the composition engine validates it against its closed variant
// set and skips anything it does not recognize.
type SectionDescriptor struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	SortOrder int             `json:"sort_order"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Page is the ordered content of one path.
type Page struct {
	ID       id.PageID           `json:"id"`
	Slug     string              `json:"slug"`
	Title    string              `json:"title"`
	Sections []SectionDescriptor `json:"sections"`
}

// Species is the closed vocabulary used by animal filters.
type Species string

const (
	SpeciesDog   Species = "Dog"
	SpeciesCat   Species = "Cat"
	SpeciesOther Species = "Other"
)

// ValidSpecies reports whether s belongs to the filter vocabulary.
func ValidSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

// Animal is one adoptable animal in a tenant's listing.
type Animal struct {
	ID          id.AnimalID `json:"id"`
	TenantID    id.TenantID `json:"tenant_id"`
	Name        string      `json:"name"`
	Species     Species     `json:"species"`
	Breed       string      `json:"breed,omitempty"`
	Sex         string      `json:"sex,omitempty"`
	AgeYears    int         `json:"age_years,omitempty"`
	Description string      `json:"description,omitempty"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	Adopted     bool        `json:"adopted"`
}

// Service is one program or service the organization offers.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

// ContentBlock is a keyed free-form content fragment.
type ContentBlock struct {
	Key   string `json:"key"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// RenderPayload is everything needed to draw one page: theme, organization
// summary, the ordered section list, and the auxiliary entity collections
// individual sections draw from.
type RenderPayload struct {
	TenantID     id.TenantID    `json:"tenant_id"`
	Design       Design         `json:"design"`
	Organization OrgSummary     `json:"organization"`
	Page         Page           `json:"page"`
	Animals      []Animal       `json:"animals,omitempty"`
	Services     []Service      `json:"services,omitempty"`
	Content      []ContentBlock `json:"content,omitempty"`
}
