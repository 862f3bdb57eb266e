package embed

import (
	"bytes"
	"html/template"

	"pawprint/internal/sitedata/models"
)

// The frame shell is served into a cross-origin iframe, so it carries the
// auto-resize announcement: whenever its rendered height changes it posts the
// new height to the parent frame. One-way and best-effort; it is not part of
// the authorization protocol.
var frameTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Adoptable Animals</title>
<style>
body { margin: 0; font-family: Helvetica, Arial, sans-serif; color: #1a202c; }
.animal-card { border: 1px solid #e2e8f0; border-radius: 8px; padding: 12px; margin: 8px; }
.animal-card img { max-width: 100%; border-radius: 4px; }
.animal-card h3 { margin: 8px 0 4px; }
.empty { padding: 16px; color: #718096; }
</style>
</head>
<body>
{{if .Animals}}{{range .Animals}}<div class="animal-card">
{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}">{{end}}
<h3>{{.Name}}</h3>
<p>{{.Species}}{{if .Breed}} · {{.Breed}}{{end}}{{if .AgeYears}} · {{.AgeYears}} yr{{end}}</p>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>{{end}}
{{else}}<p class="empty">No animals match right now. Check back soon.</p>{{end}}
<script>
(function () {
  var last = 0;
  function announce() {
    var h = document.documentElement.scrollHeight;
    if (h !== last) {
      last = h;
      window.parent.postMessage({ type: "pawprint:resize", height: h }, "*");
    }
  }
  if (window.parent !== window) {
    announce();
    if (window.ResizeObserver) {
      new ResizeObserver(announce).observe(document.body);
    } else {
      window.addEventListener("load", announce);
      setInterval(announce, 500);
    }
  }
})();
</script>
</body>
</html>
`))

// RenderFrame produces the widget iframe HTML for an already-authorized set
// of animals.
func RenderFrame(animals []models.Animal) ([]byte, error) {
	var buf bytes.Buffer
	err := frameTemplate.Execute(&buf, struct {
		Animals []models.Animal
	}{animals})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
