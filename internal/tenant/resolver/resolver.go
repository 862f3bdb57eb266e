// Package resolver maps an inbound request's host and path to the tenant
// that owns it, or determines that the request targets the admin surface.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"pawprint/internal/platform/config"
	"pawprint/internal/sentinel"
	"pawprint/internal/sitedata"
	"pawprint/internal/tenant/models"
	"pawprint/internal/tenant/store"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// descriptorTTL bounds how long a resolved descriptor may be served from
// cache before the directory is consulted again.
const descriptorTTL = 5 * time.Minute

// Resolver resolves tenants. Construct once at startup with the process
// configuration; it is safe for concurrent use.
type Resolver struct {
	cfg    config.Multitenancy
	source store.Source
	cache  *ristretto.Cache[string, *models.TenantDescriptor]
	// nav orders concurrent lookups per key so a slow, superseded directory
	// response never overwrites a fresher cache entry.
	nav    *sitedata.NavigatorSet
	logger *slog.Logger
}

// New creates a Resolver over the given tenant source.
func New(cfg config.Multitenancy, source store.Source, logger *slog.Logger) (*Resolver, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *models.TenantDescriptor]{
		NumCounters: 10_000, // ~10x expected tenant count
		MaxCost:     1_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Resolver{
		cfg:    cfg,
		source: source,
		cache:  cache,
		nav:    sitedata.NewNavigatorSet(),
		logger: logger,
	}, nil
}

// Close releases cache resources.
func (r *Resolver) Close() {
	r.cache.Close()
}

// DetectRoutingKey extracts the tenant routing key from a request's host and
// path according to the configured mode. The second return value is false
// when the request carries no tenant key (bare host, admin surface, or the
// platform base domain in custom-domain mode).
func (r *Resolver) DetectRoutingKey(host, path string) (id.RoutingKey, bool) {
	host = stripPort(host)

	switch r.cfg.Mode {
	case config.ModeSubdomain:
		if label, ok := r.subdomainLabel(host); ok {
			if label == r.cfg.AdminLabel {
				return "", false
			}
			return id.RoutingKey(label), true
		}
		// Bare host: fall back to the first path segment so local
		// development works without real subdomains.
		return r.pathSegmentKey(path)

	case config.ModePath:
		return r.pathSegmentKey(path)

	case config.ModeCustomDomain:
		if host == "" || host == r.cfg.BaseDomain || strings.HasSuffix(host, "."+r.cfg.BaseDomain) {
			return "", false
		}
		return id.RoutingKey(host), true
	}
	return "", false
}

// IsAdminSurface reports whether the request targets the administrative
// surface: the host carries the reserved admin label, or the path is rooted
// at the reserved admin path. This holds regardless of the configured mode
// so the admin surface is always reachable.
func (r *Resolver) IsAdminSurface(host, path string) bool {
	host = stripPort(host)
	if label, ok := r.subdomainLabel(host); ok && label == r.cfg.AdminLabel {
		return true
	}
	return firstPathSegment(path) == r.cfg.AdminPath
}

// Resolve looks up the descriptor for a routing key. It is a pure function
// of the key: the same key always yields an equivalent descriptor.
//
// An unresolvable key on an isolation-enabled deployment is an access-denied
// condition, not a silent default. With isolation disabled it yields
// (nil, nil) and the caller falls back to the signed-in principal's own
// tenant, if any.
func (r *Resolver) Resolve(ctx context.Context, key id.RoutingKey) (*models.TenantDescriptor, error) {
	if key.IsEmpty() {
		return r.unresolved("empty routing key")
	}

	cacheKey := strings.ToLower(key.String())
	if t, ok := r.cache.Get(cacheKey); ok {
		return r.checkActive(t)
	}

	ticket := r.nav.Begin(cacheKey)
	t, err := r.source.FindByRoutingKey(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return r.unresolved("no tenant for routing key " + key.String())
		}
		return nil, dErrors.Wrap(err, dErrors.CodeTransientNetwork, "tenant directory unavailable")
	}

	if ticket.Current() {
		r.cache.SetWithTTL(cacheKey, t, 1, descriptorTTL)
	}
	return r.checkActive(t)
}

// CanAccess applies the tenant isolation policy. When isolation is disabled
// access is always granted. When enabled, a principal reaches only its own
// bound tenant unless it holds an elevated role.
func (r *Resolver) CanAccess(principal *models.Principal, tenant *models.TenantDescriptor) bool {
	if !r.cfg.Isolation {
		return true
	}
	if principal == nil || tenant == nil {
		return false
	}
	if principal.Elevated() {
		return true
	}
	return principal.TenantID == tenant.ID
}

func (r *Resolver) checkActive(t *models.TenantDescriptor) (*models.TenantDescriptor, error) {
	if !t.Active {
		// Inactive tenants never resolve to a usable descriptor.
		return r.unresolved("tenant " + t.RoutingKey.String() + " is inactive")
	}
	return t, nil
}

func (r *Resolver) unresolved(reason string) (*models.TenantDescriptor, error) {
	if r.cfg.Isolation {
		r.logger.Warn("tenant resolution denied", "reason", reason)
		return nil, dErrors.New(dErrors.CodeAccessDenied, "access denied")
	}
	return nil, nil
}

// subdomainLabel returns the leftmost label when host is a subdomain of the
// base domain.
func (r *Resolver) subdomainLabel(host string) (string, bool) {
	suffix := "." + r.cfg.BaseDomain
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}
	prefix := strings.TrimSuffix(host, suffix)
	if prefix == "" || strings.Contains(prefix, ".") {
		// Nested subdomains are not tenant keys.
		return "", false
	}
	return prefix, true
}

// pathSegmentKey derives a routing key from the first path segment,
// excluding the reserved admin path.
func (r *Resolver) pathSegmentKey(path string) (id.RoutingKey, bool) {
	seg := firstPathSegment(path)
	if seg == "" || seg == r.cfg.AdminPath {
		return "", false
	}
	return id.RoutingKey(seg), true
}

func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
