package rank

import (
	"testing"
)

func TestScoreWeights(t *testing.T) {
	preferred := []string{"booking.example.org"}

	tests := []struct {
		url      string
		expected int
	}{
		{"https://booking.example.org/hamlet-tickets", 5},
		{"https://booking.example.org/about", 3},
		{"https://example.com/production/macbeth", 2},
		{"https://example.com/shakespeare-festival-TICKETS", 3},
		{"https://example.com/shakespeare", 1},
		{"https://example.com/reviews/hamlet", 0},
	}

	for _, tt := range tests {
		if got := Score(tt.url, preferred); got != tt.expected {
			t.Errorf("Score(%q): expected %d, got: %d", tt.url, tt.expected, got)
		}
	}
}

func TestScoreIgnoresEmptyDomains(t *testing.T) {
	if got := Score("https://example.com/reviews", []string{""}); got != 0 {
		t.Errorf("Expected empty preferred domain to score 0, got: %d", got)
	}
}

func TestPickPrefersDomainMatch(t *testing.T) {
	// Preferred-domain plus keyword hit must outscore a bare review link.
	links := []string{
		"https://example.com/hamlet-review",
		"https://booking.example.org/hamlet-tickets",
	}

	url, ok := Pick("https://news.example.net/article", links, []string{"booking.example.org"})
	if !ok {
		t.Fatal("Expected a pick, got none")
	}
	if url != "https://booking.example.org/hamlet-tickets" {
		t.Errorf("Expected booking link, got: %s", url)
	}
}

func TestPickResolvesRelativeLinks(t *testing.T) {
	url, ok := Pick("https://example.com/articles/review", []string{"/tickets/hamlet"}, nil)
	if !ok {
		t.Fatal("Expected a pick, got none")
	}
	if url != "https://example.com/tickets/hamlet" {
		t.Errorf("Expected resolved link, got: %s", url)
	}
}

func TestPickTieKeepsFirstOccurrence(t *testing.T) {
	links := []string{
		"https://aaa.example.com/tickets",
		"https://zzz.example.com/show",
	}

	url, ok := Pick("https://news.example.net/article", links, nil)
	if !ok {
		t.Fatal("Expected a pick, got none")
	}
	if url != "https://aaa.example.com/tickets" {
		t.Errorf("Expected first of tied links, got: %s", url)
	}
}

func TestPickRejectsZeroSignal(t *testing.T) {
	links := []string{
		"https://example.com/about",
		"mailto:editor@example.com",
		"javascript:void(0)",
	}

	if url, ok := Pick("https://news.example.net/article", links, nil); ok {
		t.Errorf("Expected no pick for zero-signal links, got: %s", url)
	}
}

func TestPickEmptyLinks(t *testing.T) {
	if url, ok := Pick("https://news.example.net/article", nil, []string{"example.com"}); ok {
		t.Errorf("Expected no pick for empty link list, got: %s", url)
	}
}
