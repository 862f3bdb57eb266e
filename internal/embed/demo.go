package embed

import (
	"github.com/google/uuid"

	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
)

// DemoToken is the literal accepted in place of a signed token in
// non-production environments. It bypasses signature verification and serves
// fixed sample data so integrators can build against the widget surface
// before a real token is minted.
const DemoToken = "demo"

var (
	demoTenantID = id.TenantID(uuid.MustParse("00000000-0000-0000-0000-00000000d310"))
	demoOrgID    = id.OrgID(uuid.MustParse("00000000-0000-0000-0000-00000000d0e6"))
)

func demoAnimals() []models.Animal {
	return []models.Animal{
		{
			ID:          id.AnimalID(uuid.MustParse("00000000-0000-0000-0001-000000000001")),
			TenantID:    demoTenantID,
			Name:        "Biscuit",
			Species:     models.SpeciesDog,
			Breed:       "Beagle Mix",
			Sex:         "Male",
			AgeYears:    3,
			Description: "Gentle couch companion who loves long sniffy walks.",
		},
		{
			ID:          id.AnimalID(uuid.MustParse("00000000-0000-0000-0001-000000000002")),
			TenantID:    demoTenantID,
			Name:        "Clementine",
			Species:     models.SpeciesCat,
			Breed:       "Domestic Shorthair",
			Sex:         "Female",
			AgeYears:    2,
			Description: "Talkative lap cat, best as the only pet in the home.",
		},
		{
			ID:          id.AnimalID(uuid.MustParse("00000000-0000-0000-0001-000000000003")),
			TenantID:    demoTenantID,
			Name:        "Pepper",
			Species:     models.SpeciesOther,
			Breed:       "Holland Lop",
			Sex:         "Female",
			AgeYears:    1,
			Description: "Curious rabbit who free-roams and flops for pets.",
		},
	}
}

func demoCapability() *Capability {
	return &Capability{
		OrgID:    demoOrgID,
		TenantID: demoTenantID,
	}
}
