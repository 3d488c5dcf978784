package page

import (
	"testing"
)

func TestRunCollectsDocumentParts(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
<title>Hamlet at the Globe</title>
<meta property="og:title" content="Hamlet | Shakespeare's Globe">
<meta name="Description" content="A new staging of Hamlet">
<meta name="empty" content="">
<script type="application/ld+json">{"@type":"TheaterEvent"}</script>
<script type="text/javascript">var x = 1;</script>
</head>
<body>
<a href="/whats-on/hamlet">What's on</a>
<a href="https://example.com/tickets">Tickets</a>
<a>No href</a>
<img src="/images/hamlet-poster.jpg">
<img alt="no src">
</body>
</html>`

	reader := NewReader()
	p := reader.Run([]byte(html))

	if p.Title != "Hamlet at the Globe" {
		t.Errorf("Expected title 'Hamlet at the Globe', got: %s", p.Title)
	}

	if len(p.Links) != 2 {
		t.Fatalf("Expected 2 links, got: %d", len(p.Links))
	}
	if p.Links[0] != "/whats-on/hamlet" {
		t.Errorf("Expected first link '/whats-on/hamlet', got: %s", p.Links[0])
	}

	if p.Meta["og:title"] != "Hamlet | Shakespeare's Globe" {
		t.Errorf("Expected og:title meta, got: %s", p.Meta["og:title"])
	}
	if p.Meta["description"] != "A new staging of Hamlet" {
		t.Errorf("Expected lowercased description key, got: %s", p.Meta["description"])
	}
	if _, ok := p.Meta["empty"]; ok {
		t.Error("Expected meta tags without content to be skipped")
	}

	if len(p.Images) != 1 || p.Images[0] != "/images/hamlet-poster.jpg" {
		t.Errorf("Expected single image src, got: %v", p.Images)
	}

	if len(p.StructuredBlocks) != 1 {
		t.Fatalf("Expected 1 structured block, got: %d", len(p.StructuredBlocks))
	}
	if p.StructuredBlocks[0] != `{"@type":"TheaterEvent"}` {
		t.Errorf("Unexpected structured block: %s", p.StructuredBlocks[0])
	}
}

func TestRunToleratesMalformedMarkup(t *testing.T) {
	html := `<html><head><title>Broken page</title><meta property="og:image" content="/a.jpg">
<body><div><a href="/link-one"><p>unclosed<img src="/b.jpg">`

	p := NewReader().Run([]byte(html))

	if len(p.Links) != 1 {
		t.Errorf("Expected 1 link from malformed markup, got: %d", len(p.Links))
	}
	if len(p.Images) != 1 {
		t.Errorf("Expected 1 image from malformed markup, got: %d", len(p.Images))
	}
}

func TestRunEmptyInput(t *testing.T) {
	p := NewReader().Run(nil)

	if p.Title != "" {
		t.Errorf("Expected empty title, got: %s", p.Title)
	}
	if len(p.Links) != 0 || len(p.Images) != 0 || len(p.StructuredBlocks) != 0 {
		t.Error("Expected empty page record for empty input")
	}
}

func TestResolveURL(t *testing.T) {
	base := "https://example.com/articles/hamlet-review"

	tests := []struct {
		link     string
		expected string
		ok       bool
	}{
		{"/tickets/hamlet", "https://example.com/tickets/hamlet", true},
		{"https://other.org/show", "https://other.org/show", true},
		{"mailto:box-office@example.com", "", false},
		{"javascript:void(0)", "", false},
		{"ftp://example.com/file", "", false},
		{"data:image/png;base64,AAAA", "", false},
	}

	for _, tt := range tests {
		resolved, ok := ResolveURL(base, tt.link)
		if ok != tt.ok {
			t.Errorf("ResolveURL(%q): expected ok=%v, got: %v", tt.link, tt.ok, ok)
			continue
		}
		if resolved != tt.expected {
			t.Errorf("ResolveURL(%q): expected %q, got: %q", tt.link, tt.expected, resolved)
		}
	}
}
