// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "pawprint/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing OrgID where TenantID is expected.
type (
	OrgID    uuid.UUID
	TenantID uuid.UUID
	AnimalID uuid.UUID
	PageID   uuid.UUID
)

// RoutingKey identifies a tenant from a request: a subdomain label, the
// first path segment, or a full custom hostname depending on routing mode.
type RoutingKey string

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseOrgID(s string) (OrgID, error) {
	id, err := parseUUID(s, "org ID")
	return OrgID(id), err
}

func ParseTenantID(s string) (TenantID, error) {
	id, err := parseUUID(s, "tenant ID")
	return TenantID(id), err
}

func ParseAnimalID(s string) (AnimalID, error) {
	id, err := parseUUID(s, "animal ID")
	return AnimalID(id), err
}

func ParsePageID(s string) (PageID, error) {
	id, err := parseUUID(s, "page ID")
	return PageID(id), err
}

// String methods - for logging and debugging.

func (id OrgID) String() string     { return uuid.UUID(id).String() }
func (id TenantID) String() string  { return uuid.UUID(id).String() }
func (id AnimalID) String() string  { return uuid.UUID(id).String() }
func (id PageID) String() string    { return uuid.UUID(id).String() }
func (k RoutingKey) String() string { return string(k) }

// IsNil checks - used for service-layer validation.

func (id OrgID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id TenantID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AnimalID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id PageID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (k RoutingKey) IsEmpty() bool { return k == "" }

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; use IsNil() at the service layer for business
// validation so store lookups can return proper "not found" errors.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
