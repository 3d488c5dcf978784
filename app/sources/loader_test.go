package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	list, err := Load(filepath.Join(t.TempDir(), "sources.yaml"))
	if err != nil {
		t.Fatalf("Expected missing source list to load as empty, got: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty source list, got: %d", len(list))
	}
}

func TestLoadSourceList(t *testing.T) {
	yamlData := `- name: Shakespeare's Globe
  url: https://www.shakespearesglobe.com/whats-on/
- name: Royal Shakespeare Company
  url: https://www.rsc.org.uk/tickets
- name: Broken record
  url: "not a url"
`
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 sources, got: %d", len(list))
	}
	if list[0].Name != "Shakespeare's Globe" {
		t.Errorf("Expected first source name, got: %s", list[0].Name)
	}

	domains := Domains(list)
	if len(domains) != 2 {
		t.Fatalf("Expected 2 usable domains, got: %v", domains)
	}
	if domains[0] != "www.shakespearesglobe.com" || domains[1] != "www.rsc.org.uk" {
		t.Errorf("Unexpected domains: %v", domains)
	}
}

func TestLoadMalformedSourceList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("url: not-a-list"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed source list")
	}
}

func TestLoadPlays(t *testing.T) {
	yamlData := `- Hamlet
- The Tempest
`
	path := filepath.Join(t.TempDir(), "plays.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	plays, err := LoadPlays(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(plays) != 2 || plays[0] != "Hamlet" || plays[1] != "The Tempest" {
		t.Errorf("Unexpected play list: %v", plays)
	}
}

func TestLoadPlaysMissingFile(t *testing.T) {
	plays, err := LoadPlays(filepath.Join(t.TempDir(), "plays.yaml"))
	if err != nil {
		t.Fatalf("Expected missing play list to load as empty, got: %v", err)
	}
	if plays != nil {
		t.Errorf("Expected nil play list, got: %v", plays)
	}
}
