// Package compose turns a render payload's ordered section descriptors into
// escaped HTML fragments, threading one shared theme-token set through every
// variant renderer.
package compose

import (
	"html/template"
	"log/slog"
	"sort"
	"strings"

	"pawprint/internal/platform/metrics"
	"pawprint/internal/sitedata/models"
)

// RenderedSection is one composed block of the page, in final order.
type RenderedSection struct {
	ID   string
	Type SectionType
	HTML template.HTML
}

// ComposedPage is the full render product handed to the HTTP layer.
type ComposedPage struct {
	Title    string
	Theme    Theme
	Sections []RenderedSection
}

// Engine composes pages. It is stateless and safe for concurrent use.
type Engine struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates a composition Engine.
func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NavBaseFromPath derives the link-rewrite base from the current request
// path's first segment. Chrome links are rewritten against this at render
// time rather than trusting pre-baked absolute links, so generated links stay
// correct even when content was authored before the tenant's routing key was
// known. Returns "" when the path has no leading segment.
func NavBaseFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	first, _, _ := strings.Cut(trimmed, "/")
	return "/" + first
}

// Compose renders every known section of the payload in sortOrder. Unknown
// section types are skipped; a malformed data bag degrades that one section
// to its defaults. Composition never fails a page.
//
// navBase prefixes chrome (header/footer) navigation links; pass "" when the
// tenant is addressed by host rather than by path.
func (e *Engine) Compose(payload *models.RenderPayload, navBase string) ComposedPage {
	theme := DeriveTheme(payload.Design)

	sections := make([]models.SectionDescriptor, len(payload.Page.Sections))
	copy(sections, payload.Page.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].SortOrder < sections[j].SortOrder
	})

	out := ComposedPage{
		Title: payload.Page.Title,
		Theme: theme,
	}
	for _, s := range sections {
		if !KnownSectionType(SectionType(s.Type)) {
			e.logger.Debug("skipping unknown section type",
				"section_id", s.ID,
				"type", s.Type,
			)
			if e.metrics != nil {
				e.metrics.IncrementSectionSkipped()
			}
			continue
		}
		if e.metrics != nil {
			e.metrics.IncrementSectionRendered(s.Type)
		}
		out.Sections = append(out.Sections, RenderedSection{
			ID:   s.ID,
			Type: SectionType(s.Type),
			HTML: e.renderSection(s, theme, payload, navBase),
		})
	}
	return out
}

// renderSection dispatches one descriptor to its variant renderer. The
// caller has already validated s.Type with KnownSectionType, so the default
// arm is unreachable.
func (e *Engine) renderSection(s models.SectionDescriptor, theme Theme, payload *models.RenderPayload, navBase string) template.HTML {
	switch SectionType(s.Type) {
	case SectionHeader:
		return e.renderHeader(s, theme, payload.Organization, navBase)
	case SectionHero:
		return e.renderHero(s, theme, payload.Organization)
	case SectionAbout:
		return e.renderAbout(s, payload.Organization)
	case SectionValueProps:
		return e.renderValueProps(s)
	case SectionAnimalGrid:
		return e.renderAnimalGrid(s, payload.Animals)
	case SectionSuccessStories:
		return e.renderSuccessStories(s, payload.Content)
	case SectionApplications:
		return e.renderApplications(s)
	case SectionContact:
		return e.renderContact(s, payload.Organization)
	case SectionFooter:
		return e.renderFooter(s, payload.Organization, navBase)
	default:
		return ""
	}
}
