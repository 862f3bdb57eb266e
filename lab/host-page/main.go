// Serves a static third-party host page that embeds the widget iframe and
// listens for its resize announcements. Useful for eyeballing the embed
// protocol from the host's side of the frame boundary.
package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
)

var hostPage = template.Must(template.New("host").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Partner Site (embed host)</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; max-width: 720px; margin: 40px auto; }
iframe { width: 100%; border: 2px dashed #cbd5e0; }
.note { color: #718096; font-size: 14px; }
</style>
</head>
<body>
<h1>Our Local Shelter's Animals</h1>
<p class="note">The box below is a cross-origin iframe served by the platform.
Watch it resize itself as its content changes.</p>
<iframe id="widget" src="{{.WidgetURL}}" height="200" scrolling="no"></iframe>
<p class="note">Last announced height: <span id="height">-</span></p>
<script>
window.addEventListener("message", function (event) {
  var msg = event.data;
  if (msg && msg.type === "pawprint:resize") {
    document.getElementById("widget").height = msg.height;
    document.getElementById("height").textContent = msg.height + "px";
  }
});
</script>
</body>
</html>
`))

func main() {
	port := getenv("PORT", "9091")
	platform := getenv("PLATFORM_URL", "http://localhost:8080")
	token := getenv("EMBED_TOKEN", "demo")

	widgetURL := fmt.Sprintf("%s/embed/frame?token=%s", platform, token)

	http.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = hostPage.Execute(w, struct{ WidgetURL string }{widgetURL})
	})

	log.Printf("host page on http://localhost:%s embedding %s", port, widgetURL)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
