package sitekit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectStatusFound(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("active_projects", map[string]any{
		"projectId":     "BT-2024-77",
		"clientName":    "Acme Corp",
		"status":        "Design",
		"progress":      30,
		"lastUpdate":    "Wireframes approved.",
		"nextMilestone": "High-fidelity mockups",
	})

	p, err := c.GetProjectStatus(context.Background(), "BT-2024-77")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Acme Corp", p.ClientName)
	assert.Equal(t, "Design", p.Status)
	assert.Equal(t, 30, p.Progress)
}

func TestGetProjectStatusUnknownCode(t *testing.T) {
	c, _ := newTestClient(t)

	p, err := c.GetProjectStatus(context.Background(), "NO-SUCH-CODE")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// The demo code resolves without touching the store at all.
func TestGetProjectStatusDemo(t *testing.T) {
	c := newUnreachableClient()

	p, err := c.GetProjectStatus(context.Background(), "DEMO-123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Demo Client", p.ClientName)
	assert.Equal(t, "Development", p.Status)
	assert.Equal(t, 65, p.Progress)
}

func TestGetProjectStatusStoreError(t *testing.T) {
	c := newUnreachableClient()

	_, err := c.GetProjectStatus(context.Background(), "BT-2024-77")
	require.Error(t, err)
}

func TestLocationDataFound(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Seed("locations", map[string]any{
		"citySlug":        "boise",
		"cityName":        "Boise",
		"heroTitle":       "Boise's Favorite Web Shop",
		"heroDescription": "Hand-built sites for the Treasure Valley.",
	})

	loc := c.LocationData(context.Background(), "boise")
	assert.Equal(t, "Boise", loc.CityName)
	assert.Equal(t, "Boise's Favorite Web Shop", loc.HeroTitle)
}

func TestLocationDataSynthesized(t *testing.T) {
	c, _ := newTestClient(t)

	loc := c.LocationData(context.Background(), "San-Francisco")
	assert.Equal(t, "fallback", loc.ID)
	assert.Equal(t, "san-francisco", loc.CitySlug)
	assert.Equal(t, "San Francisco", loc.CityName)
	assert.Equal(t, "Web Design & Development in San Francisco", loc.HeroTitle)
	assert.Contains(t, loc.HeroDescription, "San Francisco")
}

// An unreachable store degrades to the same synthesized record as a
// miss; the page still renders.
func TestLocationDataStoreError(t *testing.T) {
	c := newUnreachableClient()

	loc := c.LocationData(context.Background(), "new-york")
	assert.Equal(t, "fallback", loc.ID)
	assert.Equal(t, "New York", loc.CityName)
}

func TestTitleCaseSlug(t *testing.T) {
	assert.Equal(t, "Boise", titleCaseSlug("boise"))
	assert.Equal(t, "San Francisco", titleCaseSlug("san-francisco"))
	assert.Equal(t, "Salt Lake City", titleCaseSlug("salt-lake-city"))
	assert.Equal(t, "", titleCaseSlug(""))
}
