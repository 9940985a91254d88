package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

func TestResolveServiceStrategyOrder(t *testing.T) {
	// Exact match must win over case-insensitive: B's "X" would satisfy the
	// folded strategy for "x", but A's byte-exact slug comes first in the chain.
	all := []core.ServiceRecord{
		{ID: "2", Slug: "X", Name: "B"},
		{ID: "1", Slug: "x", Name: "A"},
	}

	got, err := ResolveService(all, "x")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("1"), got.ID)

	got, err = ResolveService(all, "X")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("2"), got.ID)
}

func TestResolveServiceNumericIDFallback(t *testing.T) {
	all := []core.ServiceRecord{
		{ID: "7", Slug: "skip-hire"},
		{ID: "42", Slug: "bin-collection"},
	}

	got, err := ResolveService(all, "42")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("42"), got.ID)
}

func TestResolveServiceNumericSlugBeatsNumericID(t *testing.T) {
	// A record whose slug is literally "42" must win over the id=42 record:
	// the exact-slug strategy runs first.
	all := []core.ServiceRecord{
		{ID: "1", Slug: "42"},
		{ID: "42", Slug: "other"},
	}

	got, err := ResolveService(all, "42")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("1"), got.ID)
}

func TestResolveServiceNormalizedSlug(t *testing.T) {
	all := []core.ServiceRecord{
		{ID: "1", Slug: "garden-waste"},
		{ID: "2", Slug: "pest-control"},
	}

	got, err := ResolveService(all, "Pest_Control!!")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("2"), got.ID)
}

func TestResolveServicePartialMatch(t *testing.T) {
	all := []core.ServiceRecord{
		{ID: "1", Slug: "skip-hire", Name: "Skip Hire"},
		{ID: "2", Slug: "", Name: "Hazardous Waste Disposal"},
	}

	// No exact/normalized/folded hit for "hazardous"; name substring wins.
	got, err := ResolveService(all, "hazardous")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("2"), got.ID)
}

func TestResolveServiceNotFound(t *testing.T) {
	all := []core.ServiceRecord{
		{ID: "1", Slug: "skip-hire", Name: "Skip Hire"},
	}

	_, err := ResolveService(all, "nonexistent-slug-zzz")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = ResolveService(nil, "anything")
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = ResolveService(all, "")
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestResolveServiceDuplicatesFirstWins(t *testing.T) {
	all := []core.ServiceRecord{
		{ID: "1", Slug: "dup"},
		{ID: "2", Slug: "dup"},
	}

	got, err := ResolveService(all, "dup")
	require.NoError(t, err)
	assert.Equal(t, core.FlexID("1"), got.ID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pest_Control!!", "pest-control"},
		{"  Skip   Hire  ", "skip-hire"},
		{"already-fine", "already-fine"},
		{"UPPER", "upper"},
		{"__--__", ""},
		{"", ""},
		{"Bin Collection 2024", "bin-collection-2024"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRelatedServices(t *testing.T) {
	svc := core.ServiceRecord{ID: "1", Category: "Residential"}
	all := []core.ServiceRecord{
		svc,
		{ID: "2", Category: "Residential"},
		{ID: "3", Category: "residential"}, // related lookup is case-sensitive
		{ID: "4", Category: "Residential"},
		{ID: "5", Category: "Residential"},
		{ID: "6", Category: "Commercial"},
	}

	related := RelatedServices(all, &svc, 3)

	require.Len(t, related, 3, "capped at three")
	assert.Equal(t, core.FlexID("2"), related[0].ID)
	assert.Equal(t, core.FlexID("4"), related[1].ID)
	assert.Equal(t, core.FlexID("5"), related[2].ID)
}

func TestRelatedServicesNoCategory(t *testing.T) {
	svc := core.ServiceRecord{ID: "1"}
	all := []core.ServiceRecord{svc, {ID: "2"}}

	assert.Nil(t, RelatedServices(all, &svc, 3))
}

func TestURLSlug(t *testing.T) {
	tests := []struct {
		name     string
		svc      core.ServiceRecord
		expected string
	}{
		{"prefers slug", core.ServiceRecord{ID: "9", Slug: "skip-hire", Name: "Skip Hire"}, "skip-hire"},
		{"skips sentinel slug", core.ServiceRecord{ID: "9", Slug: "d", Name: "Skip Hire"}, "9"},
		{"falls back to id", core.ServiceRecord{ID: "9", Name: "Skip Hire"}, "9"},
		{"derives from name", core.ServiceRecord{Name: "Skip Hire & Delivery"}, "skip-hire-delivery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, URLSlug(tt.svc))
		})
	}
}
