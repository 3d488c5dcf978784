package catalog

import "encoding/json"

// MaxImages caps how many image URLs a production carries.
const MaxImages = 2

// Entry is one persisted production record. Beyond the automatically
// derived fields it carries curator-owned ones (themes, synopsis,
// reviews, staging_description, is_tour, sample) that the merge step
// only ever seeds on first creation, never recomputes.
type Entry struct {
	ID                 string            `json:"id"`
	Sample             bool              `json:"sample"`
	Play               string            `json:"play"`
	ProductionTitle    string            `json:"production_title"`
	Company            string            `json:"company"`
	Venue              string            `json:"venue"`
	City               string            `json:"city"`
	Country            string            `json:"country"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	IsTour             bool              `json:"is_tour"`
	Themes             []string          `json:"themes"`
	Synopsis           string            `json:"synopsis"`
	ImageURL           *string           `json:"image_url"`
	ImageURLs          []string          `json:"image_urls"`
	Reviews            []json.RawMessage `json:"reviews"`
	Sources            []string          `json:"sources"`
	NeedsEditorial     *bool             `json:"needs_editorial,omitempty"`
	StagingDescription *string           `json:"staging_description,omitempty"`
}

// Candidate is a fully extracted, not-yet-persisted production
// observation.
type Candidate struct {
	Play          string
	Title         string
	Company       string
	Venue         string
	City          string
	Country       string
	StartDate     string
	EndDate       string
	ProductionURL string
	Sources       []string
	ImageURLs     []string
}

// Entry converts the candidate into a fresh catalog entry with curator
// fields at their defaults.
func (c Candidate) Entry(season string) Entry {
	needsEditorial := true
	stagingDescription := ""

	images := c.ImageURLs
	if len(images) > MaxImages {
		images = images[:MaxImages]
	}

	entry := Entry{
		ID:                 BuildID(c.Play, c.Company, c.Venue, c.ProductionURL, season),
		Play:               c.Play,
		ProductionTitle:    c.Title,
		Company:            c.Company,
		Venue:              c.Venue,
		City:               c.City,
		Country:            c.Country,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Themes:             []string{},
		ImageURLs:          images,
		Reviews:            []json.RawMessage{},
		Sources:            c.Sources,
		NeedsEditorial:     &needsEditorial,
		StagingDescription: &stagingDescription,
	}

	if len(images) > 0 {
		first := images[0]
		entry.ImageURL = &first
	}

	return entry
}
