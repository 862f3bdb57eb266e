// Mock content service for local development and manual testing. Serves the
// per-group content API the gateway consumes, with fixed sample tenants and
// configurable latency so fallback and degradation paths can be exercised.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPort      = "9090"
	defaultLatencyMs = "50"
)

var latencyMs = getEnvInt("LATENCY_MS", defaultLatencyMs)

type design struct {
	PrimaryColor    string `json:"primary_color,omitempty"`
	SecondaryColor  string `json:"secondary_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	TextColor       string `json:"text_color,omitempty"`
	HeadingFont     string `json:"heading_font,omitempty"`
	BodyFont        string `json:"body_font,omitempty"`
}

type orgSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

type section struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	SortOrder int             `json:"sort_order"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type page struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Sections []section `json:"sections"`
}

type animal struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed,omitempty"`
	Sex      string `json:"sex,omitempty"`
	AgeYears int    `json:"age_years,omitempty"`
	Adopted  bool   `json:"adopted"`
}

type renderPayload struct {
	TenantID     string     `json:"tenant_id"`
	Design       design     `json:"design"`
	Organization orgSummary `json:"organization"`
	Page         page       `json:"page"`
}

// One fixed tenant; every routing key except "unknown" resolves to it so the
// server is useful no matter which slug the platform asks for.
var (
	sampleTenantID = uuid.MustParse("11111111-1111-1111-1111-111111111111").String()
	sampleOrgID    = uuid.MustParse("22222222-2222-2222-2222-222222222222").String()
)

func samplePayload(slug string) renderPayload {
	return renderPayload{
		TenantID: sampleTenantID,
		Design: design{
			PrimaryColor:   "#276749",
			SecondaryColor: "#d69e2e",
			HeadingFont:    "Georgia, serif",
		},
		Organization: orgSummary{
			ID:      sampleOrgID,
			Name:    "Happy Tails Rescue",
			Tagline: "Second chances start here",
			Email:   "hello@happytails.example",
			Phone:   "555-0100",
			City:    "Springfield",
			State:   "CA",
		},
		Page: page{
			ID:    uuid.NewString(),
			Slug:  slug,
			Title: "Happy Tails Rescue",
			Sections: []section{
				{ID: "s1", Type: "header", SortOrder: 0},
				{ID: "s2", Type: "hero", SortOrder: 1, Data: json.RawMessage(`{"headline":"Adopt, don't shop","subheadline":"Meet the dogs and cats waiting for you"}`)},
				{ID: "s3", Type: "animal-grid", SortOrder: 2, Data: json.RawMessage(`{"heading":"Looking for a home"}`)},
				{ID: "s4", Type: "mystery-widget", SortOrder: 3},
				{ID: "s5", Type: "contact", SortOrder: 4},
				{ID: "s6", Type: "footer", SortOrder: 5},
			},
		},
	}
}

func sampleAnimals() []animal {
	return []animal{
		{ID: uuid.NewString(), TenantID: sampleTenantID, Name: "Rex", Species: "Dog", Breed: "Shepherd Mix", Sex: "Male", AgeYears: 4},
		{ID: uuid.NewString(), TenantID: sampleTenantID, Name: "Luna", Species: "Cat", Breed: "Tabby", Sex: "Female", AgeYears: 2},
		{ID: uuid.NewString(), TenantID: sampleTenantID, Name: "Mochi", Species: "Other", Breed: "Guinea Pig", Sex: "Female", AgeYears: 1},
		{ID: uuid.NewString(), TenantID: sampleTenantID, Name: "Buddy", Species: "Dog", Breed: "Beagle", Sex: "Male", AgeYears: 7, Adopted: true},
	}
}

func main() {
	port := getEnv("PORT", defaultPort)

	http.HandleFunc("/health", handleHealth)
	http.HandleFunc("/render-payload", handleRenderPayload)
	http.HandleFunc("/animals", handleAnimals)
	http.HandleFunc("/animals/", handleAnimal)
	http.HandleFunc("/services", handleServices)
	http.HandleFunc("/content-blocks", handleContentBlocks)

	log.Printf("mock content service starting on port %s", port)
	log.Printf("simulated latency: %dms", latencyMs)

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "content-service",
	})
}

func handleRenderPayload(w http.ResponseWriter, r *http.Request) {
	simulateLatency()
	slug := r.URL.Query().Get("slug")
	// The "unknown" slug lets callers exercise the not-found path.
	if slug == "unknown" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such page"})
		return
	}
	writeJSON(w, http.StatusOK, samplePayload(slug))
}

func handleAnimals(w http.ResponseWriter, r *http.Request) {
	simulateLatency()
	species := r.URL.Query().Get("species")
	out := make([]animal, 0)
	for _, a := range sampleAnimals() {
		if species != "" && a.Species != species {
			continue
		}
		out = append(out, a)
	}
	writeJSON(w, http.StatusOK, out)
}

func handleAnimal(w http.ResponseWriter, r *http.Request) {
	simulateLatency()
	id := strings.TrimPrefix(r.URL.Path, "/animals/")
	for _, a := range sampleAnimals() {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	// IDs are regenerated per process, so lookups usually land here; return
	// the first sample instead so detail views stay demonstrable.
	writeJSON(w, http.StatusOK, sampleAnimals()[0])
}

func handleServices(w http.ResponseWriter, _ *http.Request) {
	simulateLatency()
	writeJSON(w, http.StatusOK, []map[string]string{
		{"name": "Adoption", "description": "Matching animals with forever homes."},
		{"name": "Fostering", "description": "Short-term homes while animals wait."},
		{"name": "TNR", "description": "Trap-neuter-return for community cats."},
	})
}

func handleContentBlocks(w http.ResponseWriter, _ *http.Request) {
	simulateLatency()
	writeJSON(w, http.StatusOK, []map[string]string{
		{"key": "success-story", "title": "Buddy found his people", "body": "After two years with us, Buddy went home last spring."},
	})
}

func simulateLatency() {
	if latencyMs > 0 {
		time.Sleep(time.Duration(latencyMs) * time.Millisecond)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key, fallback string) int {
	v := getEnv(key, fallback)
	n, err := strconv.Atoi(v)
	if err != nil {
		n, _ = strconv.Atoi(fallback)
	}
	return n
}
