package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// BuildID derives the stable, human-legible identifier for a production.
// Two runs over the same production converge on the same id. When a page
// yields neither company nor venue the production URL takes their place,
// so unrelated productions that share no identifying text cannot collide.
func BuildID(play, company, venue, productionURL, season string) string {
	base := fmt.Sprintf("%s %s %s %s", play, company, venue, season)
	if strings.TrimSpace(company) == "" && strings.TrimSpace(venue) == "" {
		base = fmt.Sprintf("%s %s %s", play, productionURL, season)
	}

	slug := slugPattern.ReplaceAllString(strings.ToLower(base), "-")
	return strings.Trim(slug, "-")
}
