package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pawprint/internal/platform/config"
	"pawprint/internal/sentinel"
	"pawprint/internal/tenant/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// Directory resolves routing keys against the organizations API group of the
// content service.
type Directory struct {
	endpoint config.Endpoint
	client   *http.Client
}

// NewDirectory creates a directory source for the given organizations endpoint.
func NewDirectory(endpoint config.Endpoint) *Directory {
	return &Directory{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// directoryRecord is the wire shape of one organization entry.
type directoryRecord struct {
	ID         string          `json:"id"`
	OrgID      string          `json:"org_id"`
	Name       string          `json:"name"`
	RoutingKey string          `json:"routing_key"`
	Active     bool            `json:"active"`
	Features   map[string]bool `json:"features"`
	CreatedAt  time.Time       `json:"created_at"`
}

// FindByRoutingKey looks up a descriptor by routing key. A 404 maps to
// sentinel.ErrNotFound; transport failures map to sentinel.ErrUnavailable so
// the resolver can translate them exactly once.
func (d *Directory) FindByRoutingKey(ctx context.Context, key id.RoutingKey) (*models.TenantDescriptor, error) {
	u := fmt.Sprintf("%s/organizations?routing_key=%s", d.endpoint.BaseURL, url.QueryEscape(key.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "build directory request")
	}
	if d.endpoint.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.endpoint.Token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory lookup: %w", sentinel.ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("directory lookup status %d: %w", resp.StatusCode, sentinel.ErrUnavailable)
	}

	var rec directoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode directory response")
	}
	return rec.toDescriptor()
}

func (r *directoryRecord) toDescriptor() (*models.TenantDescriptor, error) {
	tenantID, err := id.ParseTenantID(r.ID)
	if err != nil {
		return nil, err
	}
	orgID, err := id.ParseOrgID(r.OrgID)
	if err != nil {
		return nil, err
	}

	features := make(map[models.Feature]bool, len(r.Features))
	for k, v := range r.Features {
		features[models.Feature(k)] = v
	}

	return &models.TenantDescriptor{
		ID:         tenantID,
		OrgID:      orgID,
		Name:       r.Name,
		RoutingKey: id.RoutingKey(r.RoutingKey),
		Active:     r.Active,
		Features:   features,
		CreatedAt:  r.CreatedAt,
	}, nil
}

var _ Source = (*Directory)(nil)
