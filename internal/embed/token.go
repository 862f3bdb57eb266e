// Package embed issues and verifies scoped, time-limited capability tokens
// that let an untrusted third-party page read a restricted view of one
// tenant's animal data without ever holding the tenant's credentials.
//
// The verified token is the complete authorization. There is no secondary
// lookup and no per-token revocation; a compromised token can only be
// outlived or invalidated by rotating the signing secret.
package embed

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pawprint/internal/sitedata/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// Filters is the restriction vocabulary a capability may carry. An absent
// filter means "no restriction", never "deny all".
type Filters struct {
	Species models.Species `json:"species,omitempty"`
}

// Capability is the verified scope of an embed token.
type Capability struct {
	OrgID    id.OrgID
	TenantID id.TenantID
	Filters  Filters
}

type capabilityClaims struct {
	OrgID    string  `json:"org_id"`
	TenantID string  `json:"tenant_id"`
	Filters  Filters `json:"filters,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies capability tokens with a service-held secret.
type Issuer struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewIssuer creates an Issuer. defaultTTL applies when Issue is called with a
// non-positive ttl.
func NewIssuer(secret string, defaultTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue builds a capability token scoped to one tenant, optionally narrowed
// by filters, expiring after ttl.
func (i *Issuer) Issue(orgID id.OrgID, tenantID id.TenantID, filters Filters, ttl time.Duration) (string, error) {
	if len(i.secret) == 0 {
		return "", dErrors.New(dErrors.CodeInternal, "embed signing secret not configured")
	}
	if tenantID.IsNil() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "tenant id is required")
	}
	if filters.Species != "" && !models.ValidSpecies(filters.Species) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown species filter")
	}
	if ttl <= 0 {
		ttl = i.defaultTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, capabilityClaims{
		OrgID:    orgID.String(),
		TenantID: tenantID.String(),
		Filters:  filters,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(i.secret)
}

// Verify checks the token's signature and expiry and returns its scope.
//
// Tamper and expiry come back as distinct internal codes for logging and
// metrics; the transport layer collapses both into one public message so
// callers cannot probe which check failed.
func (i *Issuer) Verify(tokenString string) (*Capability, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeTokenMissing, "missing embed token")
	}

	claims := new(capabilityClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeTokenExpired, "embed token expired")
		}
		return nil, dErrors.New(dErrors.CodeTokenTampered, "embed token signature mismatch")
	}
	if !token.Valid {
		return nil, dErrors.New(dErrors.CodeTokenTampered, "embed token signature mismatch")
	}

	orgID, err := id.ParseOrgID(claims.OrgID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeTokenTampered, "embed token carries invalid org id")
	}
	tenantID, err := id.ParseTenantID(claims.TenantID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeTokenTampered, "embed token carries invalid tenant id")
	}

	return &Capability{
		OrgID:    orgID,
		TenantID: tenantID,
		Filters:  claims.Filters,
	}, nil
}
