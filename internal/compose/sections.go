package compose

// SectionType is the closed set of section variants the engine can render.
// Descriptors arrive with an open string tag; anything outside this set is
// skipped rather than failing the page.
type SectionType string

const (
	SectionHeader         SectionType = "header"
	SectionHero           SectionType = "hero"
	SectionAbout          SectionType = "about"
	SectionValueProps     SectionType = "value-props"
	SectionAnimalGrid     SectionType = "animal-grid"
	SectionSuccessStories SectionType = "success-stories"
	SectionApplications   SectionType = "applications"
	SectionContact        SectionType = "contact"
	SectionFooter         SectionType = "footer"
)

// KnownSectionType reports whether t belongs to the renderable variant set.
func KnownSectionType(t SectionType) bool {
	switch t {
	case SectionHeader, SectionHero, SectionAbout, SectionValueProps,
		SectionAnimalGrid, SectionSuccessStories, SectionApplications,
		SectionContact, SectionFooter:
		return true
	}
	return false
}
