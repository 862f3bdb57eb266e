// Package staff issues and validates staff bearer tokens for the admin surface.
package staff

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pawprint/internal/platform/middleware"
	"pawprint/internal/tenant/models"
	id "pawprint/pkg/domain"
	dErrors "pawprint/pkg/domain-errors"
)

// Claims are the staff token claims.
type Claims struct {
	OrgID    string `json:"org_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and validates staff tokens with a service-held key.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

// NewTokenService creates a staff token service.
func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Generate signs a token for the given principal.
func (s *TokenService) Generate(p models.Principal, now time.Time) (string, error) {
	if len(s.signingKey) == 0 {
		return "", dErrors.New(dErrors.CodeInternal, "staff signing key not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		OrgID:    p.OrgID.String(),
		TenantID: p.TenantID.String(),
		Role:     string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.signingKey)
}

// Validate parses and verifies a staff token, returning the principal.
func (s *TokenService) Validate(tokenString string) (*models.Principal, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "staff token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid staff token")
	}
	if !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid staff token")
	}

	orgID, err := id.ParseOrgID(claims.OrgID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid staff token claims")
	}
	tenantID, err := id.ParseTenantID(claims.TenantID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid staff token claims")
	}

	return &models.Principal{
		OrgID:    orgID,
		TenantID: tenantID,
		Role:     models.Role(claims.Role),
	}, nil
}

// ValidatePrincipal adapts Validate to the middleware contract.
func (s *TokenService) ValidatePrincipal(tokenString string) (*middleware.Principal, error) {
	p, err := s.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.Principal{
		OrgID:    p.OrgID.String(),
		TenantID: p.TenantID.String(),
		Role:     string(p.Role),
	}, nil
}

var _ middleware.PrincipalValidator = (*TokenService)(nil)
