package sources

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one known-good outlet. Only the domain portion of its URL is
// used, to bias link ranking toward it.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads the ordered source list. A missing file is an empty list,
// not an error.
func Load(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read source list: %w", err)
	}

	var list []Source
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse source list: %w", err)
	}

	return list, nil
}

// Domains extracts the host of every source URL, in order. Records
// without a usable host are skipped so a malformed source cannot match
// every link.
func Domains(list []Source) []string {
	var domains []string
	for _, source := range list {
		u, err := url.Parse(source.URL)
		if err != nil || u.Host == "" {
			continue
		}
		domains = append(domains, u.Host)
	}
	return domains
}

// LoadPlays reads an optional play-title list. A missing file means the
// built-in canon applies.
func LoadPlays(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read play list: %w", err)
	}

	var plays []string
	if err := yaml.Unmarshal(data, &plays); err != nil {
		return nil, fmt.Errorf("failed to parse play list: %w", err)
	}

	return plays, nil
}
