package http

import (
	encjson "encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pawprint/internal/embed"
	"pawprint/internal/platform/metrics"
	"pawprint/internal/sitedata/models"
	"pawprint/internal/transport/http/json"
	"pawprint/internal/transport/http/shared"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
	"pawprint/pkg/secrets"
)

// AdminHandler mints embed capability tokens on the admin surface. Minting
// requires the admin key, verified against its bcrypt hash from config; the
// plaintext key is never stored.
type AdminHandler struct {
	issuer       *embed.Issuer
	adminKeyHash string
	defaultTTL   time.Duration
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

// NewAdminHandler creates the token-minting handler. defaultTTL applies when
// a mint request names no ttl of its own.
func NewAdminHandler(issuer *embed.Issuer, adminKeyHash string, defaultTTL time.Duration, logger *slog.Logger, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{
		issuer:       issuer,
		adminKeyHash: adminKeyHash,
		defaultTTL:   defaultTTL,
		logger:       logger,
		metrics:      m,
	}
}

// MintTokenRequest is the embed-token mint request body.
type MintTokenRequest struct {
	OrgID      string `json:"org_id"`
	TenantID   string `json:"tenant_id"`
	Species    string `json:"species,omitempty"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

// MintTokenResponse carries the freshly minted token.
type MintTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HandleMintToken handles POST /app/api/embed-tokens.
func (h *AdminHandler) HandleMintToken(w http.ResponseWriter, r *http.Request) {
	if err := h.authorize(r); err != nil {
		shared.WriteError(w, err)
		return
	}

	var req MintTokenRequest
	if err := encjson.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed request body"))
		return
	}

	orgID, err := id.ParseOrgID(req.OrgID)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid org_id"))
		return
	}
	tenantID, err := id.ParseTenantID(req.TenantID)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid tenant_id"))
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = h.defaultTTL
	}
	token, err := h.issuer.Issue(orgID, tenantID, embed.Filters{Species: models.Species(req.Species)}, ttl)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncrementTokensIssued()
	}
	h.logger.Info("embed token minted",
		"org_id", orgID.String(),
		"tenant_id", tenantID.String(),
		"species", req.Species,
	)

	json.WriteJSON(w, http.StatusCreated, MintTokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	})
}

func (h *AdminHandler) authorize(r *http.Request) error {
	if h.adminKeyHash == "" {
		return dErrors.New(dErrors.CodeInternal, "admin key not configured")
	}
	key := r.Header.Get("X-Admin-Key")
	if key == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "missing admin key")
	}
	if err := secrets.Verify(key, h.adminKeyHash); err != nil {
		h.logger.Warn("embed token mint rejected", "reason", "bad admin key")
		return dErrors.New(dErrors.CodeUnauthorized, "invalid admin key")
	}
	return nil
}
