package service

import (
	"strconv"
	"strings"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// Upstream slugs are not guaranteed unique, non-empty, or normalized, so a
// URL segment is resolved through an ordered chain of matchers, first match
// wins. The order is load-bearing: an exact slug must beat a case-insensitive
// one, which must beat a substring hit. On duplicate data the first record in
// collection order wins within the winning strategy.

type matchStrategy func(all []core.ServiceRecord, identifier string) *core.ServiceRecord

var resolveChain = []matchStrategy{
	matchExactSlug,
	matchNumericID,
	matchNormalizedSlug,
	matchFoldedSlug,
	matchPartial,
}

// ResolveService locates exactly one record for a requested identifier, or
// reports core.ErrNotFound. It never errors for any other reason; a fetch
// failure is the caller's problem before this point.
func ResolveService(all []core.ServiceRecord, identifier string) (*core.ServiceRecord, error) {
	if identifier == "" {
		return nil, core.ErrNotFound
	}
	for _, match := range resolveChain {
		if r := match(all, identifier); r != nil {
			return r, nil
		}
	}
	return nil, core.ErrNotFound
}

func matchExactSlug(all []core.ServiceRecord, identifier string) *core.ServiceRecord {
	for i := range all {
		if all[i].Slug == identifier {
			return &all[i]
		}
	}
	return nil
}

// matchNumericID only fires when the identifier parses as a number; ids are
// compared in stringified form because the backend is loose about the type.
func matchNumericID(all []core.ServiceRecord, identifier string) *core.ServiceRecord {
	if _, err := strconv.ParseFloat(identifier, 64); err != nil {
		return nil
	}
	for i := range all {
		if all[i].ID.String() == identifier {
			return &all[i]
		}
	}
	return nil
}

func matchNormalizedSlug(all []core.ServiceRecord, identifier string) *core.ServiceRecord {
	want := Slugify(identifier)
	if want == "" {
		return nil
	}
	for i := range all {
		if Slugify(all[i].Slug) == want {
			return &all[i]
		}
	}
	return nil
}

func matchFoldedSlug(all []core.ServiceRecord, identifier string) *core.ServiceRecord {
	for i := range all {
		if strings.EqualFold(all[i].Slug, identifier) {
			return &all[i]
		}
	}
	return nil
}

// matchPartial is the last resort: substring containment against the slug or
// the display name, case-folded.
func matchPartial(all []core.ServiceRecord, identifier string) *core.ServiceRecord {
	needle := strings.ToLower(identifier)
	for i := range all {
		if strings.Contains(strings.ToLower(all[i].Slug), needle) ||
			strings.Contains(strings.ToLower(all[i].Name), needle) {
			return &all[i]
		}
	}
	return nil
}

// Slugify lower-cases and collapses every run of non-alphanumeric characters
// to a single hyphen, with leading/trailing hyphens stripped.
// "Pest_Control!!" and "pest-control" normalize to the same value.
func Slugify(s string) string {
	var out []rune
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && len(out) > 0 {
				out = append(out, '-')
			}
			pending = false
			out = append(out, r)
			continue
		}
		pending = true
	}
	return string(out)
}

// RelatedServices returns other records sharing the resolved record's exact
// category, collection order preserved, capped at max.
func RelatedServices(all []core.ServiceRecord, svc *core.ServiceRecord, max int) []core.ServiceRecord {
	if svc == nil || svc.Category == "" || max <= 0 {
		return nil
	}
	var related []core.ServiceRecord
	for _, r := range all {
		if r.ID == svc.ID {
			continue
		}
		if r.Category != svc.Category {
			continue
		}
		related = append(related, r)
		if len(related) == max {
			break
		}
	}
	return related
}

// badSlugSentinel is a known bad single-character slug present in the
// production data; links never use it.
const badSlugSentinel = "d"

// URLSlug picks the path segment for a link to a record: the slug when it is
// present and not the sentinel, else the id, else a slug derived from the
// name. Deliberately looser than ResolveService — a generated link may come
// back through a later fallback strategy.
func URLSlug(svc core.ServiceRecord) string {
	if svc.Slug != "" && svc.Slug != badSlugSentinel {
		return svc.Slug
	}
	if id := svc.ID.String(); id != "" {
		return id
	}
	return Slugify(svc.Name)
}
