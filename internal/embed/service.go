package embed

import (
	"context"
	"log/slog"

	"pawprint/internal/platform/metrics"
	"pawprint/internal/sitedata"
	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// Service performs widget reads. Every read verifies the token first, scopes
// the query to the token's tenant, and AND-merges caller filters with the
// token's filters: a token limited to Dog can never be widened by a caller
// asking for something else.
type Service struct {
	issuer      *Issuer
	client      sitedata.ContentClient
	logger      *slog.Logger
	metrics     *metrics.Metrics
	demoEnabled bool
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithDemoToken enables the demo token literal. Never enabled in production;
// config enforces that before it reaches here.
func WithDemoToken(enabled bool) Option {
	return func(s *Service) { s.demoEnabled = enabled }
}

// NewService creates the widget read service.
func NewService(issuer *Issuer, client sitedata.ContentClient, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		issuer: issuer,
		client: client,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authorize verifies the token (or accepts the demo literal when enabled)
// and returns the capability scope plus whether the demo data set applies.
func (s *Service) Authorize(tokenString string) (*Capability, bool, error) {
	if s.demoEnabled && tokenString == DemoToken {
		s.observeVerification("demo")
		return demoCapability(), true, nil
	}

	capability, err := s.issuer.Verify(tokenString)
	if err != nil {
		result := "invalid"
		switch dErrors.CodeOf(err) {
		case dErrors.CodeTokenExpired:
			result = "expired"
		case dErrors.CodeTokenTampered:
			result = "tampered"
		case dErrors.CodeTokenMissing:
			result = "missing"
		}
		s.observeVerification(result)
		s.logger.Debug("embed token rejected", "result", result)
		return nil, false, err
	}
	s.observeVerification("ok")
	return capability, false, nil
}

// ListAnimals lists the animals visible through the token, narrowed further
// by the caller's query.
func (s *Service) ListAnimals(ctx context.Context, tokenString string, query sitedata.AnimalQuery) ([]models.Animal, error) {
	capability, demo, err := s.Authorize(tokenString)
	if err != nil {
		return nil, err
	}

	merged, satisfiable := mergeFilters(capability.Filters, query)
	if !satisfiable {
		// The caller asked for something outside the token's scope. That is
		// an empty result, not an authorization error.
		return []models.Animal{}, nil
	}

	if demo {
		return filterAnimals(demoAnimals(), merged), nil
	}
	return s.client.ListAnimals(ctx, capability.TenantID, merged)
}

// GetAnimal fetches one animal, scoped to the token's tenant. An animal that
// exists but falls outside the token's filters reads as not found.
func (s *Service) GetAnimal(ctx context.Context, tokenString string, animalID id.AnimalID) (*models.Animal, error) {
	capability, demo, err := s.Authorize(tokenString)
	if err != nil {
		return nil, err
	}

	var animal *models.Animal
	if demo {
		animal = findDemoAnimal(animalID)
		if animal == nil {
			return nil, dErrors.New(dErrors.CodeNotFound, "animal not found")
		}
	} else {
		animal, err = s.client.GetAnimal(ctx, capability.TenantID, animalID)
		if err != nil {
			return nil, err
		}
	}

	if capability.Filters.Species != "" && animal.Species != capability.Filters.Species {
		return nil, dErrors.New(dErrors.CodeNotFound, "animal not found")
	}
	return animal, nil
}

func (s *Service) observeVerification(result string) {
	if s.metrics != nil {
		s.metrics.IncrementTokenVerification(result)
	}
}

// mergeFilters combines the token's filters with the caller's query using AND
// semantics. When both name a species and they differ, no animal can satisfy
// the conjunction and the second return is false.
func mergeFilters(tokenFilters Filters, query sitedata.AnimalQuery) (sitedata.AnimalQuery, bool) {
	merged := query
	if tokenFilters.Species != "" {
		if query.Species != "" && query.Species != tokenFilters.Species {
			return sitedata.AnimalQuery{}, false
		}
		merged.Species = tokenFilters.Species
	}
	return merged, true
}

func filterAnimals(animals []models.Animal, q sitedata.AnimalQuery) []models.Animal {
	out := make([]models.Animal, 0, len(animals))
	for _, a := range animals {
		if q.Species != "" && a.Species != q.Species {
			continue
		}
		out = append(out, a)
	}
	return out
}

func findDemoAnimal(animalID id.AnimalID) *models.Animal {
	for _, a := range demoAnimals() {
		if a.ID == animalID {
			return &a
		}
	}
	return nil
}
