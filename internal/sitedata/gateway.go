// Package sitedata fetches render payloads from the content service,
// absorbing every transport failure into a typed FetchResult so downstream
// code never handles transport exceptions.
package sitedata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pawprint/internal/platform/metrics"
	"pawprint/internal/platform/tracer"
	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// Gateway retrieves render payloads for (tenant routing key, path) pairs.
//
// The content service is an external dependency the renderer cannot always
// reach, so every consumer is written as if failures are the common case:
// the gateway classifies them and callers substitute the deterministic
// fallback payload. Availability over freshness.
type Gateway struct {
	client  ContentClient
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer

	// Transient connectivity is expected in dev environments; log it once
	// per process, not once per request.
	transientLogOnce sync.Once
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

// WithTracer attaches a tracer for fetch spans.
func WithTracer(t tracer.Tracer) Option {
	return func(g *Gateway) { g.tracer = t }
}

// NewGateway creates a Gateway over the given content client.
func NewGateway(client ContentClient, logger *slog.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		client: client,
		logger: logger,
		tracer: tracer.Noop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchRenderPayload retrieves the payload for one page. The page fetch
// decides success or failure; auxiliary collections (animals, services,
// content blocks) are fetched in parallel and degrade to empty collections
// on failure rather than failing the page.
//
// Every code path returns a FetchResult value. Nothing is raised past this
// boundary.
func (g *Gateway) FetchRenderPayload(ctx context.Context, key id.RoutingKey, path string) FetchResult[*models.RenderPayload] {
	start := time.Now()
	ctx, span := g.tracer.Start(ctx, "sitedata.fetch_render_payload",
		tracer.String("routing_key", key.String()),
		tracer.String("path", path),
	)

	result := g.fetch(ctx, key, path)

	if g.metrics != nil {
		outcome := "success"
		if !result.Success {
			outcome = string(result.Kind)
		}
		g.metrics.ObservePayloadFetch(outcome, time.Since(start).Seconds())
	}
	if result.Success {
		span.End(nil)
	} else {
		span.SetAttributes(tracer.String("error_kind", string(result.Kind)))
		span.End(dErrors.New(dErrors.CodeInternal, result.Message))
	}
	return result
}

func (g *Gateway) fetch(ctx context.Context, key id.RoutingKey, path string) FetchResult[*models.RenderPayload] {
	payload, err := g.client.FetchPage(ctx, key, path)
	if err != nil {
		return g.classify(err, key, path)
	}

	g.fetchAuxiliary(ctx, key, payload)
	return Ok(payload)
}

// fetchAuxiliary fills in the payload's entity collections in parallel.
// Collections already present on the page payload are kept; missing ones are
// fetched from their own API groups. An aux failure degrades that
// collection to empty and never fails the page.
func (g *Gateway) fetchAuxiliary(ctx context.Context, key id.RoutingKey, payload *models.RenderPayload) {
	eg, ctx := errgroup.WithContext(ctx)

	if payload.Animals == nil && !payload.TenantID.IsNil() {
		tenantID := payload.TenantID
		eg.Go(func() error {
			animals, err := g.client.ListAnimals(ctx, tenantID, AnimalQuery{})
			if err != nil {
				g.logger.Debug("auxiliary animals fetch failed", "routing_key", key.String(), "error", err)
				return nil
			}
			payload.Animals = animals
			return nil
		})
	}
	if payload.Services == nil {
		eg.Go(func() error {
			services, err := g.client.ListServices(ctx, key)
			if err != nil {
				g.logger.Debug("auxiliary services fetch failed", "routing_key", key.String(), "error", err)
				return nil
			}
			payload.Services = services
			return nil
		})
	}
	if payload.Content == nil {
		eg.Go(func() error {
			blocks, err := g.client.ListContent(ctx, key)
			if err != nil {
				g.logger.Debug("auxiliary content fetch failed", "routing_key", key.String(), "error", err)
				return nil
			}
			payload.Content = blocks
			return nil
		})
	}

	// Workers swallow their own errors; Wait only synchronizes.
	_ = eg.Wait()
}

// classify maps a client error to the FetchResult taxonomy.
func (g *Gateway) classify(err error, key id.RoutingKey, path string) FetchResult[*models.RenderPayload] {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNotFound:
		return Fail[*models.RenderPayload](KindNotFound, "no page at "+path)
	case dErrors.CodeTransientNetwork, dErrors.CodeTimeout:
		g.transientLogOnce.Do(func() {
			g.logger.Warn("content service unreachable; serving fallback payloads",
				"routing_key", key.String(),
				"error", err,
			)
		})
		return Fail[*models.RenderPayload](KindTransientNetwork, "content service unreachable")
	default:
		g.logger.Error("render payload fetch failed",
			"routing_key", key.String(),
			"path", path,
			"error", err,
		)
		return Fail[*models.RenderPayload](KindUnknown, err.Error())
	}
}
