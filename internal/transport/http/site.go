// Package http wires the public site, admin, and widget surfaces onto one
// chi router with the platform middleware stack.
package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"pawprint/internal/compose"
	"pawprint/internal/platform/config"
	"pawprint/internal/platform/metrics"
	"pawprint/internal/platform/middleware"
	"pawprint/internal/sitedata"
	sitedatamodels "pawprint/internal/sitedata/models"
	tenantmodels "pawprint/internal/tenant/models"
	"pawprint/internal/tenant/resolver"
	"pawprint/internal/transport/http/shared"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// pageTemplate wraps composed sections into a full HTML document with the
// theme applied at the document level.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body {
  margin: 0;
  background: {{.Theme.BackgroundColor}};
  color: {{.Theme.TextColor}};
  font-family: {{.Theme.BodyFont}};
}
h1, h2, h3 { font-family: {{.Theme.HeadingFont}}; }
a { color: {{.Theme.PrimaryColor}}; }
.site-header a, .site-footer a { color: inherit; margin-right: 12px; }
.cta { display: inline-block; padding: 8px 16px; color: #fff; border-radius: 4px; text-decoration: none; }
section, header, footer { padding: 16px; }
</style>
</head>
<body>
{{range .Sections}}{{.HTML}}{{end}}
</body>
</html>
`))

var notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Site Not Found</title></head>
<body><h1>Site not found</h1><p>No rescue organization is published at this address.</p></body>
</html>
`

// SiteHandler serves public tenant pages: resolve the tenant, fetch its
// render payload, substitute the fallback on any fetch failure, and compose
// the result into HTML.
type SiteHandler struct {
	cfg      config.Multitenancy
	resolver *resolver.Resolver
	gateway  *sitedata.Gateway
	engine   *compose.Engine
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewSiteHandler creates the public site handler.
func NewSiteHandler(cfg config.Multitenancy, res *resolver.Resolver, gw *sitedata.Gateway, eng *compose.Engine, logger *slog.Logger, m *metrics.Metrics) *SiteHandler {
	return &SiteHandler{
		cfg:      cfg,
		resolver: res,
		gateway:  gw,
		engine:   eng,
		logger:   logger,
		metrics:  m,
	}
}

// ServePage handles every public GET.
func (h *SiteHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	host, path := r.Host, r.URL.Path

	if h.resolver.IsAdminSurface(host, path) {
		// Admin API routes are mounted explicitly; anything else on the
		// admin surface has no public page.
		http.NotFound(w, r)
		return
	}

	key, ok := h.resolver.DetectRoutingKey(host, path)
	if !ok {
		h.writeHTML(w, http.StatusNotFound, []byte(notFoundPage))
		return
	}

	tenant, err := h.resolver.Resolve(r.Context(), key)
	if err != nil {
		h.observeResolution("denied")
		writeErrorPage(w, err)
		return
	}
	if tenant == nil {
		h.observeResolution("unresolved")
		h.writeHTML(w, http.StatusNotFound, []byte(notFoundPage))
		return
	}
	h.observeResolution("resolved")

	// A signed-in staff member browsing a tenant site is still subject to
	// the isolation policy; anonymous visitors are not principals.
	if p := staffPrincipal(r); p != nil && !h.resolver.CanAccess(p, tenant) {
		writeErrorPage(w, dErrors.New(dErrors.CodeAccessDenied, "access denied"))
		return
	}

	result := h.gateway.FetchRenderPayload(r.Context(), tenant.RoutingKey, h.sitePath(path))
	payload := result.Data
	if !result.Success {
		if h.metrics != nil {
			h.metrics.IncrementFallbacksServed()
		}
		payload = sitedata.Fallback(tenant.RoutingKey)
	}
	gateSections(payload, tenant)

	page := h.engine.Compose(payload, h.navBase(r.URL.Path))

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		h.logger.Error("page template execution failed", "error", err)
		writeErrorPage(w, dErrors.New(dErrors.CodeInternal, "page rendering failed"))
		return
	}
	h.writeHTML(w, http.StatusOK, buf.Bytes())
}

// featureBySection maps the gateable section variants to the tenant feature
// that controls them. Ungated variants render for everyone.
var featureBySection = map[string]tenantmodels.Feature{
	string(compose.SectionSuccessStories): tenantmodels.FeatureSuccessStories,
	string(compose.SectionApplications):   tenantmodels.FeatureApplications,
}

// gateSections drops sections the tenant's plan does not include. A tenant
// without a feature map gates nothing. The kept sections go into a fresh
// slice so the fetched payload's backing array is left untouched.
func gateSections(payload *sitedatamodels.RenderPayload, tenant *tenantmodels.TenantDescriptor) {
	if payload == nil || tenant.Features == nil {
		return
	}
	kept := make([]sitedatamodels.SectionDescriptor, 0, len(payload.Page.Sections))
	for _, s := range payload.Page.Sections {
		if f, gated := featureBySection[s.Type]; gated && !tenant.HasFeature(f) {
			continue
		}
		kept = append(kept, s)
	}
	payload.Page.Sections = kept
}

// sitePath strips the routing-key segment in path mode so the content
// service sees tenant-relative paths.
func (h *SiteHandler) sitePath(path string) string {
	if h.cfg.Mode != config.ModePath {
		return path
	}
	trimmed := strings.TrimPrefix(path, "/")
	_, rest, found := strings.Cut(trimmed, "/")
	if !found || rest == "" {
		return "/"
	}
	return "/" + rest
}

// navBase is the chrome link-rewrite base, re-read from the request path at
// render time. Only path-addressed tenants need a prefix.
func (h *SiteHandler) navBase(path string) string {
	if h.cfg.Mode != config.ModePath {
		return ""
	}
	return compose.NavBaseFromPath(path)
}

func (h *SiteHandler) observeResolution(outcome string) {
	if h.metrics != nil {
		h.metrics.IncrementTenantResolution(outcome)
	}
}

func (h *SiteHandler) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("response write failed", "error", err)
	}
}

// staffPrincipal converts the middleware principal, if any, into the tenant
// domain's principal type.
func staffPrincipal(r *http.Request) *tenantmodels.Principal {
	mp := middleware.GetPrincipal(r.Context())
	if mp == nil {
		return nil
	}
	orgID, err := id.ParseOrgID(mp.OrgID)
	if err != nil {
		return nil
	}
	tenantID, err := id.ParseTenantID(mp.TenantID)
	if err != nil {
		return nil
	}
	return &tenantmodels.Principal{
		OrgID:    orgID,
		TenantID: tenantID,
		Role:     tenantmodels.Role(mp.Role),
	}
}

// writeErrorPage renders a terminal HTML error for page requests.
func writeErrorPage(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := shared.DomainCodeToHTTPStatus(code)
	message := "Something went wrong."
	if code == dErrors.CodeAccessDenied {
		message = "You do not have access to this site."
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Error</title></head><body><h1>" +
		template.HTMLEscapeString(message) + "</h1></body></html>\n"))
}
