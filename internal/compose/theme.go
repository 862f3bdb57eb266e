package compose

import "pawprint/internal/sitedata/models"

// Theme is the resolved token set shared by every section renderer. It is
// derived once per payload; every token is guaranteed non-empty.
type Theme struct {
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	HeadingFont     string
	BodyFont        string
	LogoURL         string
}

const (
	defaultPrimaryColor    = "#2b6cb0"
	defaultSecondaryColor  = "#ed8936"
	defaultBackgroundColor = "#ffffff"
	defaultTextColor       = "#1a202c"
	defaultHeadingFont     = "Georgia, serif"
	defaultBodyFont        = "Helvetica, Arial, sans-serif"
)

// DeriveTheme fills every absent design token with its default. LogoURL is
// the only token allowed to stay empty; renderers treat it as "no logo".
func DeriveTheme(d models.Design) Theme {
	return Theme{
		PrimaryColor:    orDefault(d.PrimaryColor, defaultPrimaryColor),
		SecondaryColor:  orDefault(d.SecondaryColor, defaultSecondaryColor),
		BackgroundColor: orDefault(d.BackgroundColor, defaultBackgroundColor),
		TextColor:       orDefault(d.TextColor, defaultTextColor),
		HeadingFont:     orDefault(d.HeadingFont, defaultHeadingFont),
		BodyFont:        orDefault(d.BodyFont, defaultBodyFont),
		LogoURL:         d.LogoURL,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
