package page

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Run parses raw markup into a Page. Malformed markup yields partial
// results, never an error: the underlying parser recovers from broken
// tags, and anything it could not make sense of is simply absent.
func (r *Reader) Run(data []byte) *Page {
	p := &Page{Meta: make(map[string]string)}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return p
	}

	p.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			p.Links = append(p.Links, href)
		}
	})

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		key, _ := sel.Attr("property")
		if key == "" {
			key, _ = sel.Attr("name")
		}
		content, _ := sel.Attr("content")
		if key != "" && content != "" {
			p.Meta[strings.ToLower(key)] = content
		}
	})

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			p.Images = append(p.Images, src)
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			p.StructuredBlocks = append(p.StructuredBlocks, text)
		}
	})

	return p
}

// ResolveURL resolves a possibly relative link against base and reports
// whether the result is a fetchable http(s) URL. mailto:, javascript:
// and every other non-HTTP scheme are rejected.
func ResolveURL(base, link string) (string, bool) {
	link = strings.TrimSpace(link)
	if strings.HasPrefix(link, "mailto:") || strings.HasPrefix(link, "javascript:") {
		return "", false
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", false
	}

	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}

	return resolved.String(), true
}
