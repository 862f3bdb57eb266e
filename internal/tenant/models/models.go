package models

import (
	"time"

	id "pawprint/pkg/domain"
)

// Feature names a capability toggled per tenant.
type Feature string

const (
	FeatureEmbedWidget    Feature = "embed_widget"
	FeatureSuccessStories Feature = "success_stories"
	FeatureApplications   Feature = "applications"
)

// TenantDescriptor identifies the organization owning the current request.
// It is (re)created once per request and holds no cross-request state; the
// ID is immutable once resolved for a request.
type TenantDescriptor struct {
	ID         id.TenantID      `json:"id"`
	OrgID      id.OrgID         `json:"org_id"`
	Name       string           `json:"name"`
	RoutingKey id.RoutingKey    `json:"routing_key"`
	Active     bool             `json:"active"`
	Features   map[Feature]bool `json:"features,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// HasFeature reports whether the tenant has the named feature enabled.
func (t *TenantDescriptor) HasFeature(f Feature) bool {
	return t.Features[f]
}

// Role classifies staff principals for isolation checks.
type Role string

const (
	// RolePlatformAdmin may cross tenant boundaries.
	RolePlatformAdmin Role = "platform_admin"
	// RoleOrgStaff is bound to its own tenant.
	RoleOrgStaff Role = "org_staff"
)

// Principal is an authenticated staff identity.
type Principal struct {
	OrgID    id.OrgID
	TenantID id.TenantID
	Role     Role
}

// Elevated reports whether the principal may access any tenant.
func (p Principal) Elevated() bool {
	return p.Role == RolePlatformAdmin
}
