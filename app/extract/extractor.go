package extract

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lysyi3m/stage-comb/app/catalog"
	"github.com/lysyi3m/stage-comb/app/page"
)

// ErrInsufficientData marks pages that lack the structured signal needed
// to catalog a production. An expected outcome of heuristic extraction
// over heterogeneous pages, not a fault.
var ErrInsufficientData = errors.New("insufficient structured data")

// Terms an <img> src must mention to count as a production image.
var imageTerms = []string{"poster", "production", "show", "event", "shakespeare"}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run turns a production page into a candidate. The page must embed a
// structured event object with a valid start and end date; without a
// date range there is not enough signal to catalog a production, and the
// whole extraction fails with ErrInsufficientData. The caller attaches
// the source URLs.
func (e *Extractor) Run(play string, p *page.Page, pageURL string) (*catalog.Candidate, error) {
	event := findEvent(flattenBlocks(p.StructuredBlocks))
	if event == nil {
		return nil, fmt.Errorf("%w: no event object on %s", ErrInsufficientData, pageURL)
	}

	startDate, startOK := parseDate(stringValue(event["startDate"]))
	endDate, endOK := parseDate(stringValue(event["endDate"]))
	if !startOK || !endOK {
		return nil, fmt.Errorf("%w: missing or malformed date range on %s", ErrInsufficientData, pageURL)
	}

	venue, city, country := extractLocation(event)
	company := extractCompany(event)

	title := cmp.Or(p.Meta["og:title"], p.Title, play)
	if !strings.Contains(strings.ToLower(title), strings.ToLower(play)) {
		title = fmt.Sprintf("%s (%s)", play, cmp.Or(venue, company, "Production"))
	}

	return &catalog.Candidate{
		Play:          play,
		Title:         title,
		Company:       cmp.Or(company, venue, "Unknown company"),
		Venue:         cmp.Or(venue, "Unknown venue"),
		City:          cmp.Or(city, "Unknown city"),
		Country:       cmp.Or(country, "Unknown country"),
		StartDate:     startDate,
		EndDate:       endDate,
		ProductionURL: pageURL,
		ImageURLs:     collectImages(event, p, pageURL),
	}, nil
}

// flattenBlocks parses each structured data block and flattens top-level
// arrays into their object elements, so every later lookup deals with
// plain objects. Malformed blocks are skipped; the rest still count.
func flattenBlocks(blocks []string) []map[string]any {
	var objects []map[string]any

	for _, block := range blocks {
		var payload any
		if err := json.Unmarshal([]byte(block), &payload); err != nil {
			slog.Debug("Skipping malformed structured data block", "error", err)
			continue
		}

		switch v := payload.(type) {
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					objects = append(objects, obj)
				}
			}
		case map[string]any:
			objects = append(objects, v)
		}
	}

	return objects
}

// findEvent returns the first object whose @type (string or list)
// mentions an event. Pages embedding several event objects only ever
// surface the first.
func findEvent(objects []map[string]any) map[string]any {
	for _, obj := range objects {
		var text string
		switch v := obj["@type"].(type) {
		case string:
			text = v
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			text = strings.Join(parts, " ")
		default:
			continue
		}

		if strings.Contains(strings.ToLower(text), "event") {
			return obj
		}
	}
	return nil
}

// parseDate normalizes a schema.org date or datetime to yyyy-mm-dd. Only
// the first 10 characters count; anything that does not parse as a
// calendar date yields no value.
func parseDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 10 {
		return "", false
	}

	t, err := time.Parse("2006-01-02", value[:10])
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func extractLocation(event map[string]any) (venue, city, country string) {
	location := firstObject(event["location"])
	if location == nil {
		return "", "", ""
	}

	venue = stringValue(location["name"])
	if address, ok := location["address"].(map[string]any); ok {
		city = cmp.Or(stringValue(address["addressLocality"]), stringValue(address["addressRegion"]))
		country = stringValue(address["addressCountry"])
	}
	return venue, city, country
}

// extractCompany reads the producing entity from the first populated one
// of organizer, performer and provider. Each may be an object, a list of
// objects or a bare string.
func extractCompany(event map[string]any) string {
	for _, key := range []string{"organizer", "performer", "provider"} {
		value := event[key]
		if isEmpty(value) {
			continue
		}

		if list, ok := value.([]any); ok {
			value = list[0]
		}
		switch v := value.(type) {
		case string:
			return v
		case map[string]any:
			return stringValue(v["name"])
		}
		return ""
	}
	return ""
}

// collectImages unions, in order, the event's own images, the og:image
// meta tag and any page image whose src looks production related. Each
// is resolved against the page URL; data: and other non-HTTP URIs are
// dropped, the rest deduplicated and capped.
func collectImages(event map[string]any, p *page.Page, pageURL string) []string {
	var raw []string

	switch v := event["image"].(type) {
	case string:
		raw = append(raw, v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	if og := p.Meta["og:image"]; og != "" {
		raw = append(raw, og)
	}

	for _, src := range p.Images {
		lower := strings.ToLower(src)
		for _, term := range imageTerms {
			if strings.Contains(lower, term) {
				raw = append(raw, src)
				break
			}
		}
	}

	seen := make(map[string]bool, len(raw))
	var images []string
	for _, img := range raw {
		resolved, ok := page.ResolveURL(pageURL, img)
		if !ok || seen[resolved] {
			continue
		}
		seen[resolved] = true
		images = append(images, resolved)
		if len(images) == catalog.MaxImages {
			break
		}
	}

	return images
}

// firstObject unwraps the object-or-list-of-objects shape structured
// data uses everywhere: an object is itself, a list yields its first
// element when that element is an object, anything else is nil.
func firstObject(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case []any:
		if len(v) > 0 {
			if obj, ok := v[0].(map[string]any); ok {
				return obj
			}
		}
	}
	return nil
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}
