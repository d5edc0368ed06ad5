package sitekit

import (
	"context"
	"fmt"
	"strings"

	"github.com/brotech/sitekit/pkg/models"
)

// demoTrackingCode is the reserved code that returns a canned progress
// record without touching the store, so the tracker can be shown off
// against any store state.
const demoTrackingCode = "DEMO-123"

// GetProjectStatus resolves a client tracking code to its progress
// record. A nil record with a nil error means no project matches the
// code, which is not a failure.
func (c *Client) GetProjectStatus(ctx context.Context, code string) (*models.ActiveProject, error) {
	if code == demoTrackingCode {
		p := demoProject
		return &p, nil
	}

	records, err := c.store.Query(ctx, collActiveProjects, "projectId", code)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var p models.ActiveProject
	if err := records[0].Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LocationData resolves a city slug to its landing-page record. On a
// miss, or when the store is unreachable, it synthesizes a presentable
// entity from the slug so the page works without admin input. It never
// fails; store errors are logged.
func (c *Client) LocationData(ctx context.Context, citySlug string) models.LocationData {
	slug := strings.ToLower(citySlug)

	records, err := c.store.Query(ctx, collLocations, "citySlug", slug)
	if err != nil {
		c.log.Error("location lookup failed, synthesizing fallback", "slug", slug, "error", err)
	} else if len(records) > 0 {
		var loc models.LocationData
		if derr := records[0].Decode(&loc); derr == nil {
			return loc
		} else {
			c.log.Error("undecodable location record, synthesizing fallback", "slug", slug, "error", derr)
		}
	}

	city := titleCaseSlug(slug)
	return models.LocationData{
		ID:              "fallback",
		CitySlug:        slug,
		CityName:        city,
		HeroTitle:       fmt.Sprintf("Web Design & Development in %s", city),
		HeroDescription: fmt.Sprintf("Brotech WebSolutions provides top-tier digital services for businesses in %s. Local expertise, global standards.", city),
	}
}

// titleCaseSlug turns "san-francisco" into "San Francisco": split on
// hyphens, uppercase the first letter of each segment, join with
// spaces.
func titleCaseSlug(slug string) string {
	parts := strings.Split(slug, "-")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(out, " ")
}
