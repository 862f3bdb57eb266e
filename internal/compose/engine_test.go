package compose

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawprint/internal/sitedata/models"
)

func newTestEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func section(id, typ string, order int, data string) models.SectionDescriptor {
	var raw json.RawMessage
	if data != "" {
		raw = json.RawMessage(data)
	}
	return models.SectionDescriptor{ID: id, Type: typ, SortOrder: order, Data: raw}
}

func TestComposeSortsBySortOrder(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Title: "Home",
			Sections: []models.SectionDescriptor{
				section("c", "about", 2, ""),
				section("a", "header", 0, ""),
				section("b", "hero", 1, ""),
			},
		},
	}

	page := newTestEngine().Compose(payload, "")

	require.Len(t, page.Sections, 3)
	assert.Equal(t, "a", page.Sections[0].ID)
	assert.Equal(t, "b", page.Sections[1].ID)
	assert.Equal(t, "c", page.Sections[2].ID)
}

func TestComposeSortIsStable(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("first", "about", 1, ""),
				section("second", "about", 1, ""),
				section("third", "about", 1, ""),
			},
		},
	}

	page := newTestEngine().Compose(payload, "")

	require.Len(t, page.Sections, 3)
	assert.Equal(t, "first", page.Sections[0].ID)
	assert.Equal(t, "second", page.Sections[1].ID)
	assert.Equal(t, "third", page.Sections[2].ID)
}

func TestComposeSkipsUnknownSectionType(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("a", "header", 0, ""),
				section("b", "carousel-3d", 1, ""),
				section("c", "footer", 2, ""),
			},
		},
	}

	page := newTestEngine().Compose(payload, "")

	require.Len(t, page.Sections, 2)
	assert.Equal(t, "a", page.Sections[0].ID)
	assert.Equal(t, "c", page.Sections[1].ID)
}

func TestComposeMalformedDataDegradesOneSection(t *testing.T) {
	payload := &models.RenderPayload{
		Organization: models.OrgSummary{Name: "Happy Tails"},
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("a", "about", 0, `{"heading": 42}`),
				section("b", "contact", 1, ""),
			},
		},
	}

	page := newTestEngine().Compose(payload, "")

	require.Len(t, page.Sections, 2)
	assert.Contains(t, string(page.Sections[0].HTML), "About Happy Tails")
	assert.Contains(t, string(page.Sections[1].HTML), "Contact Us")
}

func TestComposeThemeDefaults(t *testing.T) {
	page := newTestEngine().Compose(&models.RenderPayload{}, "")

	assert.Equal(t, "#2b6cb0", page.Theme.PrimaryColor)
	assert.Equal(t, "Georgia, serif", page.Theme.HeadingFont)
	assert.Empty(t, page.Theme.LogoURL)
}

func TestComposeThemeKeepsProvidedTokens(t *testing.T) {
	payload := &models.RenderPayload{
		Design: models.Design{PrimaryColor: "#112233", LogoURL: "https://cdn.example.com/logo.png"},
	}

	page := newTestEngine().Compose(payload, "")

	assert.Equal(t, "#112233", page.Theme.PrimaryColor)
	assert.Equal(t, "#ed8936", page.Theme.SecondaryColor)
	assert.Equal(t, "https://cdn.example.com/logo.png", page.Theme.LogoURL)
}

func TestComposeRewritesChromeLinks(t *testing.T) {
	payload := &models.RenderPayload{
		Organization: models.OrgSummary{Name: "Happy Tails"},
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("h", "header", 0,
					`{"links":[{"label":"Home","href":"/"},{"label":"Animals","href":"/animals"},{"label":"Donate","href":"https://donate.example.com"}]}`),
			},
		},
	}

	page := newTestEngine().Compose(payload, "/happy-tails")

	html := string(page.Sections[0].HTML)
	assert.Contains(t, html, `href="/happy-tails"`)
	assert.Contains(t, html, `href="/happy-tails/animals"`)
	assert.Contains(t, html, `href="https://donate.example.com"`)
	assert.NotContains(t, html, `href="/animals"`)
}

func TestComposeChromeLinksUntouchedWithoutNavBase(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("f", "footer", 0, `{"links":[{"label":"About","href":"/about"}]}`),
			},
		},
	}

	page := newTestEngine().Compose(payload, "")

	assert.Contains(t, string(page.Sections[0].HTML), `href="/about"`)
}

func TestComposeAnimalGridReceivesAnimals(t *testing.T) {
	payload := &models.RenderPayload{
		Animals: []models.Animal{
			{Name: "Rex", Species: models.SpeciesDog},
			{Name: "Whiskers", Species: models.SpeciesCat, Adopted: true},
			{Name: "Luna", Species: models.SpeciesCat},
		},
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("g", "animal-grid", 0, `{"heading":"Meet Them"}`),
			},
		},
	}

	html := string(newTestEngine().Compose(payload, "").Sections[0].HTML)

	assert.Contains(t, html, "Meet Them")
	assert.Contains(t, html, "Rex")
	assert.Contains(t, html, "Luna")
	assert.NotContains(t, html, "Whiskers")
}

func TestComposeAnimalGridEmptyState(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Sections: []models.SectionDescriptor{section("g", "animal-grid", 0, "")},
		},
	}

	html := string(newTestEngine().Compose(payload, "").Sections[0].HTML)
	assert.Contains(t, html, "No animals are listed")
}

func TestComposeEscapesUntrustedContent(t *testing.T) {
	payload := &models.RenderPayload{
		Page: models.Page{
			Sections: []models.SectionDescriptor{
				section("a", "about", 0, `{"heading":"<script>alert(1)</script>","body":"safe"}`),
			},
		},
	}

	html := string(newTestEngine().Compose(payload, "").Sections[0].HTML)
	assert.False(t, strings.Contains(html, "<script>"))
}

func TestNavBaseFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"root", "/", ""},
		{"empty", "", ""},
		{"single segment", "/happy-tails", "/happy-tails"},
		{"nested", "/happy-tails/animals/123", "/happy-tails"},
		{"trailing slash", "/happy-tails/", "/happy-tails"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NavBaseFromPath(tt.path))
		})
	}
}

func TestKnownSectionType(t *testing.T) {
	for _, known := range []SectionType{
		SectionHeader, SectionHero, SectionAbout, SectionValueProps,
		SectionAnimalGrid, SectionSuccessStories, SectionApplications,
		SectionContact, SectionFooter,
	} {
		assert.True(t, KnownSectionType(known), string(known))
	}
	assert.False(t, KnownSectionType("carousel-3d"))
	assert.False(t, KnownSectionType(""))
}
