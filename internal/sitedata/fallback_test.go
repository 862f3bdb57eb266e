package sitedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "pawprint/pkg/domain"
)

func TestFallbackIsDeterministic(t *testing.T) {
	a := Fallback(id.RoutingKey("happy-tails"))
	b := Fallback(id.RoutingKey("happy-tails"))
	assert.Equal(t, a, b)
}

func TestFallbackAlwaysRendersSomething(t *testing.T) {
	p := Fallback(id.RoutingKey("happy-tails"))

	require.NotEmpty(t, p.Page.Sections)
	assert.Equal(t, "happy-tails", p.Organization.Name)
	assert.NotEmpty(t, p.Design.PrimaryColor)

	types := make([]string, 0, len(p.Page.Sections))
	for _, s := range p.Page.Sections {
		types = append(types, s.Type)
	}
	assert.Contains(t, types, "header")
	assert.Contains(t, types, "footer")
}

func TestFallbackWithEmptyKey(t *testing.T) {
	p := Fallback(id.RoutingKey(""))
	assert.Equal(t, "Rescue Organization", p.Organization.Name)
	assert.NotEmpty(t, p.Page.Sections)
}
