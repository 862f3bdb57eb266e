package resolver

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawprint/internal/platform/config"
	"pawprint/internal/tenant/models"
	"pawprint/internal/tenant/store"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

func testConfig(mode config.RoutingMode, isolation bool) config.Multitenancy {
	return config.Multitenancy{
		Mode:       mode,
		BaseDomain: "pawprint.local",
		AdminLabel: "app",
		AdminPath:  "app",
		Isolation:  isolation,
	}
}

func newResolver(t *testing.T, mode config.RoutingMode, isolation bool, src store.Source) *Resolver {
	t.Helper()
	if src == nil {
		src = store.NewInMemory()
	}
	r, err := New(testConfig(mode, isolation), src, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(r.Close)
	return r
}

func descriptor(key string, active bool) *models.TenantDescriptor {
	return &models.TenantDescriptor{
		ID:         id.TenantID(uuid.New()),
		OrgID:      id.OrgID(uuid.New()),
		Name:       "Happy Tails Rescue",
		RoutingKey: id.RoutingKey(key),
		Active:     active,
		CreatedAt:  time.Now(),
	}
}

func TestDetectRoutingKeySubdomainMode(t *testing.T) {
	r := newResolver(t, config.ModeSubdomain, false, nil)

	tests := []struct {
		name string
		host string
		path string
		key  string
		ok   bool
	}{
		{"tenant subdomain", "happy-tails.pawprint.local", "/", "happy-tails", true},
		{"subdomain with port", "happy-tails.pawprint.local:8080", "/", "happy-tails", true},
		{"admin label excluded", "app.pawprint.local", "/", "", false},
		{"bare host falls back to path", "pawprint.local", "/happy-tails/animals", "happy-tails", true},
		{"bare host admin path excluded", "pawprint.local", "/app/dashboard", "", false},
		{"bare host without path", "pawprint.local", "/", "", false},
		{"nested subdomain not a key", "a.b.pawprint.local", "/", "", false},
		{"unrelated host falls back to path", "localhost", "/happy-tails", "happy-tails", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := r.DetectRoutingKey(tt.host, tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, id.RoutingKey(tt.key), key)
		})
	}
}

func TestDetectRoutingKeyPathMode(t *testing.T) {
	r := newResolver(t, config.ModePath, false, nil)

	key, ok := r.DetectRoutingKey("anything.example.org", "/happy-tails/animals/1")
	assert.True(t, ok)
	assert.Equal(t, id.RoutingKey("happy-tails"), key)

	_, ok = r.DetectRoutingKey("anything.example.org", "/app/settings")
	assert.False(t, ok)

	_, ok = r.DetectRoutingKey("anything.example.org", "/")
	assert.False(t, ok)
}

func TestDetectRoutingKeyCustomDomainMode(t *testing.T) {
	r := newResolver(t, config.ModeCustomDomain, false, nil)

	key, ok := r.DetectRoutingKey("www.happytailsrescue.org:443", "/")
	assert.True(t, ok)
	assert.Equal(t, id.RoutingKey("www.happytailsrescue.org"), key)

	_, ok = r.DetectRoutingKey("pawprint.local", "/")
	assert.False(t, ok, "platform base domain is not a tenant domain")

	_, ok = r.DetectRoutingKey("app.pawprint.local", "/")
	assert.False(t, ok)
}

func TestDetectRoutingKeyIsDeterministic(t *testing.T) {
	r := newResolver(t, config.ModeSubdomain, false, nil)

	first, ok1 := r.DetectRoutingKey("happy-tails.pawprint.local", "/animals")
	second, ok2 := r.DetectRoutingKey("happy-tails.pawprint.local", "/animals")
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestIsAdminSurfaceRegardlessOfMode(t *testing.T) {
	for _, mode := range []config.RoutingMode{config.ModeSubdomain, config.ModePath, config.ModeCustomDomain} {
		t.Run(string(mode), func(t *testing.T) {
			r := newResolver(t, mode, false, nil)

			assert.True(t, r.IsAdminSurface("app.pawprint.local", "/"))
			assert.True(t, r.IsAdminSurface("pawprint.local", "/app/tenants"))
			assert.False(t, r.IsAdminSurface("happy-tails.pawprint.local", "/animals"))
		})
	}
}

func TestResolveActiveTenant(t *testing.T) {
	src := store.NewInMemory()
	want := descriptor("happy-tails", true)
	src.Put(want)
	r := newResolver(t, config.ModeSubdomain, false, src)

	got, err := r.Resolve(context.Background(), "happy-tails")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)

	// Same key resolves to an equivalent descriptor.
	again, err := r.Resolve(context.Background(), "happy-tails")
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
}

func TestResolveInactiveTenantNeverUsable(t *testing.T) {
	src := store.NewInMemory()
	src.Put(descriptor("sleepy-paws", false))

	t.Run("isolation disabled yields no tenant", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, false, src)
		got, err := r.Resolve(context.Background(), "sleepy-paws")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("isolation enabled denies", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, true, src)
		_, err := r.Resolve(context.Background(), "sleepy-paws")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAccessDenied))
	})
}

func TestResolveUnknownKey(t *testing.T) {
	t.Run("isolation enabled is access denied", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, true, nil)
		_, err := r.Resolve(context.Background(), "nobody-home")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAccessDenied))
	})

	t.Run("isolation disabled yields no tenant", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, false, nil)
		got, err := r.Resolve(context.Background(), "nobody-home")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCanAccessIsolation(t *testing.T) {
	tenantA := descriptor("tenant-a", true)
	tenantB := descriptor("tenant-b", true)

	boundToA := &models.Principal{
		OrgID:    tenantA.OrgID,
		TenantID: tenantA.ID,
		Role:     models.RoleOrgStaff,
	}
	admin := &models.Principal{
		OrgID:    tenantA.OrgID,
		TenantID: tenantA.ID,
		Role:     models.RolePlatformAdmin,
	}

	t.Run("isolation enabled", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, true, nil)

		assert.True(t, r.CanAccess(boundToA, tenantA))
		assert.False(t, r.CanAccess(boundToA, tenantB), "principal bound to A must not reach B")
		assert.True(t, r.CanAccess(admin, tenantB), "elevated role crosses tenant boundaries")
		assert.False(t, r.CanAccess(nil, tenantA))
	})

	t.Run("isolation disabled grants everything", func(t *testing.T) {
		r := newResolver(t, config.ModeSubdomain, false, nil)

		assert.True(t, r.CanAccess(boundToA, tenantB))
		assert.True(t, r.CanAccess(nil, tenantA))
	})
}
