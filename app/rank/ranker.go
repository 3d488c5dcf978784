package rank

import (
	"strings"

	"github.com/lysyi3m/stage-comb/app/page"
)

// Terms that suggest a link points at a bookable production page rather
// than coverage about one.
var linkTerms = []string{"ticket", "tickets", "production", "event", "show", "season"}

// Score rates a single absolute URL: 3 for a preferred outlet domain,
// 2 for a production-ish term, 1 for mentioning shakespeare. Kept pure
// over its inputs so the weights can be tuned apart from selection.
func Score(url string, preferredDomains []string) int {
	score := 0
	lower := strings.ToLower(url)

	for _, domain := range preferredDomains {
		if domain != "" && strings.Contains(url, domain) {
			score += 3
			break
		}
	}

	for _, term := range linkTerms {
		if strings.Contains(lower, term) {
			score += 2
			break
		}
	}

	if strings.Contains(lower, "shakespeare") {
		score++
	}

	return score
}

// Pick selects the single highest-scoring resolvable link. Ties keep the
// first occurrence. A zero top score returns no pick at all: a page with
// no signal is not guessed at.
func Pick(baseURL string, links []string, preferredDomains []string) (string, bool) {
	best := ""
	bestScore := 0

	for _, link := range links {
		resolved, ok := page.ResolveURL(baseURL, link)
		if !ok {
			continue
		}
		if score := Score(resolved, preferredDomains); score > bestScore {
			best = resolved
			bestScore = score
		}
	}

	return best, bestScore > 0
}
