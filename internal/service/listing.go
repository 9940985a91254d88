package service

import (
	"strings"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// PageSize is the fixed public listing page size.
const PageSize = 12

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// ListingQuery is the parsed /services query string.
type ListingQuery struct {
	Search   string
	Category string // "" or "all" means no filter
	Page     int    // 1-based; values < 1 are treated as 1
}

// ListingResult is one page of the filtered collection plus pager metadata.
type ListingResult struct {
	Services    []core.ServiceRecord
	TotalCount  int
	CurrentPage int
	TotalPages  int
}

// BuildListing narrows and pages the full collection. It is a pure function:
// same snapshot and query in, same result out, no errors for any input.
// TotalCount and TotalPages describe the filtered set before slicing, and
// TotalPages is never zero so the pager always has at least one state.
// Out-of-range pages yield an empty slice rather than clamping back.
func BuildListing(all []core.ServiceRecord, q ListingQuery) ListingResult {
	page := q.Page
	if page < 1 {
		page = 1
	}

	filtered := make([]core.ServiceRecord, 0, len(all))
	for _, r := range all {
		if matchesSearch(r, q.Search) && matchesCategory(r, q.Category) {
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return ListingResult{
		Services:    filtered[start:end],
		TotalCount:  total,
		CurrentPage: page,
		TotalPages:  pages,
	}
}

// matchesSearch is case-folded substring containment over name and
// description. No tokenization, no ranking.
func matchesSearch(r core.ServiceRecord, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	return r.Description != "" && strings.Contains(strings.ToLower(r.Description), needle)
}

// matchesCategory is case-insensitive equality. Records with no category
// never match a concrete filter.
func matchesCategory(r core.ServiceRecord, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	if r.Category == "" {
		return false
	}
	return strings.EqualFold(r.Category, category)
}

// Categories derives the filter options for the listing UI: "all" followed by
// every distinct non-empty category in first-seen order. Distinctness here is
// case-SENSITIVE even though the filter predicate is not; "Residential" and
// "residential" both appear if the data carries both.
func Categories(all []core.ServiceRecord) []string {
	cats := []string{CategoryAll}
	seen := make(map[string]bool, len(all))
	for _, r := range all {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		cats = append(cats, r.Category)
	}
	return cats
}
