package discovery

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the GDELT DOC 2.0 article list endpoint.
const DefaultBaseURL = "https://api.gdeltproject.org/api/v2/doc/doc"

// Terms that bias the article search toward staging coverage.
var stagingTerms = []string{
	"production",
	"theatre",
	"theater",
	"festival",
	"stage",
	"staging",
	"performance",
	"presented",
	"premiere",
}

// Article is one record from the article search provider. Only the URL
// is required; the rest is passthrough.
type Article struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	Domain string `json:"domain"`
}

type searchResponse struct {
	Articles []Article `json:"articles"`
}

// Client queries an article search endpoint for coverage of a play
// within one season's calendar year.
type Client struct {
	http    *resty.Client
	baseURL string
	season  string
}

func NewClient(httpClient *resty.Client, baseURL, season string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		season:  season,
	}
}

// BuildQuery builds the search query for one play: the quoted title plus
// the staging terms joined by OR.
func BuildQuery(play string) string {
	return fmt.Sprintf("%q Shakespeare (%s)", play, strings.Join(stagingTerms, " OR "))
}

// Run returns up to maxRecords articles for the play, newest first.
func (c *Client) Run(ctx context.Context, play string, maxRecords int) ([]Article, error) {
	var result searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":         BuildQuery(play),
			"mode":          "artlist",
			"format":        "json",
			"maxrecords":    strconv.Itoa(maxRecords),
			"sort":          "datedesc",
			"startdatetime": c.season + "0101000000",
			"enddatetime":   c.season + "1231235959",
		}).
		SetResult(&result).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query article search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("article search returned HTTP %d", resp.StatusCode())
	}

	return result.Articles, nil
}
