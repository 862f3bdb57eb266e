package sitedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pawprint/internal/platform/config"
	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// AnimalQuery narrows an animal listing. Zero values mean no restriction.
type AnimalQuery struct {
	Text    string
	Species models.Species
}

// ContentClient is the outbound interface to the content service. Each
// method talks to its own API group with that group's bearer token.
type ContentClient interface {
	// FetchPage retrieves the page payload (design, organization, sections)
	// for a tenant routing key and path.
	FetchPage(ctx context.Context, slug id.RoutingKey, path string) (*models.RenderPayload, error)
	// ListAnimals retrieves a tenant's animals, optionally narrowed by query.
	ListAnimals(ctx context.Context, tenantID id.TenantID, q AnimalQuery) ([]models.Animal, error)
	// GetAnimal retrieves one animal, scoped to the tenant.
	GetAnimal(ctx context.Context, tenantID id.TenantID, animalID id.AnimalID) (*models.Animal, error)
	// ListServices retrieves a tenant's service blocks.
	ListServices(ctx context.Context, slug id.RoutingKey) ([]models.Service, error)
	// ListContent retrieves a tenant's free-form content blocks.
	ListContent(ctx context.Context, slug id.RoutingKey) ([]models.ContentBlock, error)
}

// HTTPClient implements ContentClient over the per-group endpoints.
type HTTPClient struct {
	endpoints map[config.APIGroup]config.Endpoint
	client    *http.Client
}

// NewHTTPClient creates a content client for the configured endpoints.
func NewHTTPClient(endpoints map[config.APIGroup]config.Endpoint) *HTTPClient {
	return &HTTPClient{
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) FetchPage(ctx context.Context, slug id.RoutingKey, path string) (*models.RenderPayload, error) {
	q := url.Values{}
	q.Set("slug", slug.String())
	q.Set("path", path)

	var payload models.RenderPayload
	if err := c.getJSON(ctx, config.GroupPages, "/render-payload?"+q.Encode(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *HTTPClient) ListAnimals(ctx context.Context, tenantID id.TenantID, query AnimalQuery) ([]models.Animal, error) {
	q := url.Values{}
	q.Set("tenant_id", tenantID.String())
	if query.Text != "" {
		q.Set("q", query.Text)
	}
	if query.Species != "" {
		q.Set("species", string(query.Species))
	}

	var animals []models.Animal
	if err := c.getJSON(ctx, config.GroupAnimals, "/animals?"+q.Encode(), &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

func (c *HTTPClient) GetAnimal(ctx context.Context, tenantID id.TenantID, animalID id.AnimalID) (*models.Animal, error) {
	q := url.Values{}
	q.Set("tenant_id", tenantID.String())

	var animal models.Animal
	if err := c.getJSON(ctx, config.GroupAnimals, "/animals/"+animalID.String()+"?"+q.Encode(), &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

func (c *HTTPClient) ListServices(ctx context.Context, slug id.RoutingKey) ([]models.Service, error) {
	var services []models.Service
	if err := c.getJSON(ctx, config.GroupSiteContent, "/services?slug="+url.QueryEscape(slug.String()), &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *HTTPClient) ListContent(ctx context.Context, slug id.RoutingKey) ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	if err := c.getJSON(ctx, config.GroupSiteContent, "/content-blocks?slug="+url.QueryEscape(slug.String()), &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// getJSON performs a bearer-authenticated GET against one API group and
// decodes the JSON body. Failures come back as domain errors so the gateway
// can classify them without inspecting transport details.
func (c *HTTPClient) getJSON(ctx context.Context, group config.APIGroup, pathAndQuery string, out any) error {
	ep, ok := c.endpoints[group]
	if !ok || ep.BaseURL == "" {
		return dErrors.New(dErrors.CodeTransientNetwork, fmt.Sprintf("no endpoint configured for API group %q", group))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.BaseURL+pathAndQuery, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build content request")
	}
	req.Header.Set("Accept", "application/json")
	if ep.Token != "" {
		req.Header.Set("Authorization", "Bearer "+ep.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// Connection refused, DNS failure, timeout: the expected
		// cannot-reach-the-service class.
		if errors.Is(err, context.Canceled) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "content request canceled")
		}
		return dErrors.Wrap(err, dErrors.CodeTransientNetwork, "content service unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, "content service reported not found")
	default:
		return dErrors.New(dErrors.CodeInternal, fmt.Sprintf("unexpected content service status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "malformed content service response")
	}
	return nil
}

var _ ContentClient = (*HTTPClient)(nil)
