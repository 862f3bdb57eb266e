package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mssola/useragent"

	"pawprint/internal/embed"
	"pawprint/internal/platform/metrics"
	"pawprint/internal/sitedata"
	"pawprint/internal/sitedata/models"
	"pawprint/internal/transport/http/json"
	"pawprint/internal/transport/http/shared"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// EmbedHandler serves the widget surface. Every read verifies the embed
// token first; the verified token is the complete authorization.
type EmbedHandler struct {
	service *embed.Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewEmbedHandler creates the widget handler.
func NewEmbedHandler(service *embed.Service, logger *slog.Logger, m *metrics.Metrics) *EmbedHandler {
	return &EmbedHandler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

// HandleListAnimals handles GET /embed/animals.
func (h *EmbedHandler) HandleListAnimals(w http.ResponseWriter, r *http.Request) {
	h.observeDevice(r)

	animals, err := h.service.ListAnimals(r.Context(), r.URL.Query().Get("token"), queryFromRequest(r))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, animals)
}

// HandleGetAnimal handles GET /embed/animals/{animalID}.
func (h *EmbedHandler) HandleGetAnimal(w http.ResponseWriter, r *http.Request) {
	h.observeDevice(r)

	animalID, err := id.ParseAnimalID(chi.URLParam(r, "animalID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid animal id"))
		return
	}

	animal, err := h.service.GetAnimal(r.Context(), r.URL.Query().Get("token"), animalID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, animal)
}

// HandleFrame handles GET /embed/frame: the iframe HTML shell with the
// auto-resize announcement script baked in.
func (h *EmbedHandler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	h.observeDevice(r)

	animals, err := h.service.ListAnimals(r.Context(), r.URL.Query().Get("token"), queryFromRequest(r))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	body, err := embed.RenderFrame(animals)
	if err != nil {
		h.logger.Error("widget frame rendering failed", "error", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "frame rendering failed"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *EmbedHandler) observeDevice(r *http.Request) {
	if h.metrics == nil {
		return
	}
	ua := useragent.New(r.UserAgent())
	device := "desktop"
	switch {
	case ua.Bot():
		device = "bot"
	case ua.Mobile():
		device = "mobile"
	}
	h.metrics.IncrementWidgetRequest(device)
}

func queryFromRequest(r *http.Request) sitedata.AnimalQuery {
	return sitedata.AnimalQuery{
		Text:    r.URL.Query().Get("q"),
		Species: models.Species(r.URL.Query().Get("species")),
	}
}
