package catalog

import "cmp"

type Merger struct{}

func NewMerger() *Merger {
	return &Merger{}
}

// Run combines an existing entry with a newly extracted one of the same
// identity. Curated or previously filled data always wins over new
// automated data; list fields are unioned preserving first occurrence.
// Merging the same incoming entry twice yields the same result as once.
func (m *Merger) Run(existing, incoming Entry) Entry {
	merged := existing

	merged.Play = cmp.Or(merged.Play, incoming.Play)
	merged.ProductionTitle = cmp.Or(merged.ProductionTitle, incoming.ProductionTitle)
	merged.Company = cmp.Or(merged.Company, incoming.Company)
	merged.Venue = cmp.Or(merged.Venue, incoming.Venue)
	merged.City = cmp.Or(merged.City, incoming.City)
	merged.Country = cmp.Or(merged.Country, incoming.Country)
	merged.StartDate = cmp.Or(merged.StartDate, incoming.StartDate)
	merged.EndDate = cmp.Or(merged.EndDate, incoming.EndDate)

	merged.Sources = union(existing.Sources, incoming.Sources, 0)

	if images := union(existing.ImageURLs, incoming.ImageURLs, MaxImages); len(images) > 0 {
		merged.ImageURLs = images
	}
	if (merged.ImageURL == nil || *merged.ImageURL == "") && incoming.ImageURL != nil {
		merged.ImageURL = incoming.ImageURL
	}

	// Seeded once, then curator-owned
	if merged.NeedsEditorial == nil {
		merged.NeedsEditorial = incoming.NeedsEditorial
	}
	if merged.StagingDescription == nil {
		merged.StagingDescription = incoming.StagingDescription
	}

	return merged
}

// union concatenates a and b, deduplicates preserving the order of first
// occurrence, and caps the result at limit when limit is positive.
func union(a, b []string, limit int) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string

	for _, v := range append(append([]string{}, a...), b...) {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
