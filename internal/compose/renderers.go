package compose

import (
	"bytes"
	"encoding/json"
	"html/template"

	"pawprint/internal/sitedata/models"
)

// Each variant renderer decodes its own data bag and receives only the
// auxiliary collections it declares. A malformed bag degrades that section to
// its documented defaults; it never aborts composition of the rest.

var sectionTemplates = template.Must(template.New("sections").Parse(`
{{define "header"}}<header class="site-header" style="background:{{.Theme.PrimaryColor}};color:{{.Theme.BackgroundColor}}">
{{if .Theme.LogoURL}}<img class="site-logo" src="{{.Theme.LogoURL}}" alt="{{.Org.Name}}">{{end}}
<span class="site-name">{{.Org.Name}}</span>
<nav>{{range .Links}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</nav>
</header>{{end}}

{{define "hero"}}<section class="hero" style="color:{{.Theme.TextColor}}">
{{if .ImageURL}}<img class="hero-image" src="{{.ImageURL}}" alt="">{{end}}
<h1 style="font-family:{{.Theme.HeadingFont}}">{{.Headline}}</h1>
{{if .Subheadline}}<p>{{.Subheadline}}</p>{{end}}
{{if .CTALabel}}<a class="cta" href="{{.CTAHref}}" style="background:{{.Theme.SecondaryColor}}">{{.CTALabel}}</a>{{end}}
</section>{{end}}

{{define "about"}}<section class="about">
<h2>{{.Heading}}</h2>
<p>{{.Body}}</p>
</section>{{end}}

{{define "value-props"}}<section class="value-props">
{{range .Items}}<div class="value-prop">
{{if .IconURL}}<img src="{{.IconURL}}" alt="">{{end}}
<h3>{{.Title}}</h3>
<p>{{.Body}}</p>
</div>{{end}}
</section>{{end}}

{{define "animal-grid"}}<section class="animal-grid">
<h2>{{.Heading}}</h2>
{{if .Animals}}<div class="grid">{{range .Animals}}<div class="animal-card">
{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}">{{end}}
<h3>{{.Name}}</h3>
<p>{{.Species}}{{if .Breed}} · {{.Breed}}{{end}}</p>
</div>{{end}}</div>
{{else}}<p class="empty">No animals are listed right now. Check back soon.</p>{{end}}
</section>{{end}}

{{define "success-stories"}}<section class="success-stories">
<h2>{{.Heading}}</h2>
{{range .Stories}}<article>
<h3>{{.Title}}</h3>
<p>{{.Body}}</p>
</article>{{end}}
</section>{{end}}

{{define "applications"}}<section class="applications">
<h2>{{.Heading}}</h2>
<p>{{.Body}}</p>
{{if .FormURL}}<a class="cta" href="{{.FormURL}}">Apply to Adopt</a>{{end}}
</section>{{end}}

{{define "contact"}}<section class="contact">
<h2>{{.Heading}}</h2>
{{if .Org.Email}}<p class="email">{{.Org.Email}}</p>{{end}}
{{if .Org.Phone}}<p class="phone">{{.Org.Phone}}</p>{{end}}
{{if or .Org.City .Org.State}}<p class="location">{{.Org.City}}{{if and .Org.City .Org.State}}, {{end}}{{.Org.State}}</p>{{end}}
</section>{{end}}

{{define "footer"}}<footer class="site-footer">
<span>{{.Org.Name}}</span>
<nav>{{range .Links}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</nav>
</footer>{{end}}
`))

// NavLink is one chrome navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

func defaultNavLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Href: "/"},
		{Label: "Animals", Href: "/animals"},
		{Label: "About", Href: "/about"},
		{Label: "Contact", Href: "/contact"},
	}
}

// rewriteLinks prefixes site-relative hrefs with navBase. Absolute and
// external links pass through untouched.
func rewriteLinks(links []NavLink, navBase string) []NavLink {
	if navBase == "" {
		return links
	}
	out := make([]NavLink, len(links))
	for i, l := range links {
		out[i] = l
		if len(l.Href) > 0 && l.Href[0] == '/' {
			if l.Href == "/" {
				out[i].Href = navBase
			} else {
				out[i].Href = navBase + l.Href
			}
		}
	}
	return out
}

// decodeBag unmarshals a section's data bag into dst, reporting whether the
// bag was usable. Callers keep dst's defaults when it was not.
func (e *Engine) decodeBag(s models.SectionDescriptor, dst any) bool {
	if len(s.Data) == 0 {
		return false
	}
	if err := json.Unmarshal(s.Data, dst); err != nil {
		e.logger.Debug("malformed section data, rendering defaults",
			"section_id", s.ID,
			"type", s.Type,
			"error", err,
		)
		return false
	}
	return true
}

func (e *Engine) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		e.logger.Error("section template execution failed", "template", name, "error", err)
		return ""
	}
	return template.HTML(buf.String())
}

func (e *Engine) renderHeader(s models.SectionDescriptor, theme Theme, org models.OrgSummary, navBase string) template.HTML {
	var bag struct {
		Links []NavLink `json:"links"`
	}
	e.decodeBag(s, &bag)
	if len(bag.Links) == 0 {
		bag.Links = defaultNavLinks()
	}
	return e.execute("header", struct {
		Theme Theme
		Org   models.OrgSummary
		Links []NavLink
	}{theme, org, rewriteLinks(bag.Links, navBase)})
}

func (e *Engine) renderHero(s models.SectionDescriptor, theme Theme, org models.OrgSummary) template.HTML {
	bag := struct {
		Headline    string `json:"headline"`
		Subheadline string `json:"subheadline"`
		ImageURL    string `json:"image_url"`
		CTALabel    string `json:"cta_label"`
		CTAHref     string `json:"cta_href"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Headline == "" {
		bag.Headline = "Welcome to " + org.Name
	}
	return e.execute("hero", struct {
		Theme       Theme
		Headline    string
		Subheadline string
		ImageURL    string
		CTALabel    string
		CTAHref     string
	}{theme, bag.Headline, bag.Subheadline, bag.ImageURL, bag.CTALabel, bag.CTAHref})
}

func (e *Engine) renderAbout(s models.SectionDescriptor, org models.OrgSummary) template.HTML {
	bag := struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Heading == "" {
		bag.Heading = "About " + org.Name
	}
	return e.execute("about", bag)
}

func (e *Engine) renderValueProps(s models.SectionDescriptor) template.HTML {
	var bag struct {
		Items []struct {
			Title   string `json:"title"`
			Body    string `json:"body"`
			IconURL string `json:"icon_url"`
		} `json:"items"`
	}
	e.decodeBag(s, &bag)
	return e.execute("value-props", bag)
}

func (e *Engine) renderAnimalGrid(s models.SectionDescriptor, animals []models.Animal) template.HTML {
	bag := struct {
		Heading string `json:"heading"`
		Max     int    `json:"max"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Heading == "" {
		bag.Heading = "Adoptable Animals"
	}

	available := make([]models.Animal, 0, len(animals))
	for _, a := range animals {
		if a.Adopted {
			continue
		}
		available = append(available, a)
		if bag.Max > 0 && len(available) == bag.Max {
			break
		}
	}
	return e.execute("animal-grid", struct {
		Heading string
		Animals []models.Animal
	}{bag.Heading, available})
}

func (e *Engine) renderSuccessStories(s models.SectionDescriptor, content []models.ContentBlock) template.HTML {
	type story struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	bag := struct {
		Heading string  `json:"heading"`
		Stories []story `json:"stories"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Heading == "" {
		bag.Heading = "Success Stories"
	}
	if len(bag.Stories) == 0 {
		// Content-block stories authored outside the page stand in when the
		// section carries none of its own.
		for _, c := range content {
			if c.Key == "success-story" || c.Key == "story" {
				bag.Stories = append(bag.Stories, story{Title: c.Title, Body: c.Body})
			}
		}
	}
	return e.execute("success-stories", bag)
}

func (e *Engine) renderApplications(s models.SectionDescriptor) template.HTML {
	bag := struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
		FormURL string `json:"form_url"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Heading == "" {
		bag.Heading = "Adoption Applications"
	}
	if bag.Body == "" {
		bag.Body = "Ready to give an animal a home? Start your application."
	}
	return e.execute("applications", bag)
}

func (e *Engine) renderContact(s models.SectionDescriptor, org models.OrgSummary) template.HTML {
	bag := struct {
		Heading string `json:"heading"`
	}{}
	e.decodeBag(s, &bag)
	if bag.Heading == "" {
		bag.Heading = "Contact Us"
	}
	return e.execute("contact", struct {
		Heading string
		Org     models.OrgSummary
	}{bag.Heading, org})
}

func (e *Engine) renderFooter(s models.SectionDescriptor, org models.OrgSummary, navBase string) template.HTML {
	var bag struct {
		Links []NavLink `json:"links"`
	}
	e.decodeBag(s, &bag)
	if len(bag.Links) == 0 {
		bag.Links = defaultNavLinks()
	}
	return e.execute("footer", struct {
		Org   models.OrgSummary
		Links []NavLink
	}{org, rewriteLinks(bag.Links, navBase)})
}
