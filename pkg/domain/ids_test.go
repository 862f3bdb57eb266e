package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pawprint/pkg/domain-errors"
)

func TestParseTenantID(t *testing.T) {
	raw := uuid.New()

	id, err := ParseTenantID(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw.String(), id.String())
	assert.False(t, id.IsNil())
}

func TestParseTenantIDRejectsGarbage(t *testing.T) {
	_, err := ParseTenantID("not-a-uuid")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestParseEmptyInput(t *testing.T) {
	for name, parse := range map[string]func(string) error{
		"org":    func(s string) error { _, err := ParseOrgID(s); return err },
		"tenant": func(s string) error { _, err := ParseTenantID(s); return err },
		"animal": func(s string) error { _, err := ParseAnimalID(s); return err },
		"page":   func(s string) error { _, err := ParsePageID(s); return err },
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, dErrors.HasCode(parse(""), dErrors.CodeInvalidInput))
		})
	}
}

func TestNilUUIDIsAllowedByParse(t *testing.T) {
	// Nil IDs pass parsing; IsNil is the service-layer check.
	id, err := ParseOrgID(uuid.Nil.String())
	require.NoError(t, err)
	assert.True(t, id.IsNil())
}

func TestRoutingKey(t *testing.T) {
	assert.True(t, RoutingKey("").IsEmpty())
	assert.False(t, RoutingKey("happy-tails").IsEmpty())
	assert.Equal(t, "happy-tails", RoutingKey("happy-tails").String())
}
