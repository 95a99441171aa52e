package inputs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeScenarioYAML(t *testing.T) {
	data := `
project:
  id: p1
  name: Demo
  start: 2025-01-06T00:00:00Z
  end: 2025-01-31T00:00:00Z
tasks:
  - id: a
    priority: 2
    sizing_hours: 16
    resources:
      e1: 16
  - id: b
    priority: 1
    predecessors: [a]
employees:
  - id: e1
    name: Alice
`
	s, err := DecodeScenario(bytes.NewBufferString(data), "yaml")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Project.ID != "p1" || len(s.Tasks) != 2 || len(s.Employees) != 1 {
		t.Fatalf("bad scenario %+v", s)
	}
	if s.Tasks[0].Resources["e1"] != 16 {
		t.Fatalf("bad resources %+v", s.Tasks[0])
	}
}

func TestDecodeScenarioJSON(t *testing.T) {
	data := `{"project":{"id":"p1","start":"2025-01-06T00:00:00Z","end":"2025-01-10T00:00:00Z"},"tasks":[{"id":"a","priority":1}]}`
	s, err := DecodeScenario(bytes.NewBufferString(data), "json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Project.ID != "p1" || len(s.Tasks) != 1 {
		t.Fatalf("bad scenario %+v", s)
	}
}

func TestDecodeScenarioInvertedWindow(t *testing.T) {
	data := `{"project":{"id":"p1","start":"2025-01-10T00:00:00Z","end":"2025-01-06T00:00:00Z"}}`
	if _, err := DecodeScenario(bytes.NewBufferString(data), "json"); err == nil {
		t.Fatalf("expected error for inverted window")
	}
}

func TestLoadScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.json")
	data := `{"project":{"id":"p1","start":"2025-01-06T00:00:00Z","end":"2025-01-10T00:00:00Z"},"tasks":[]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Project.ID != "p1" {
		t.Fatalf("bad scenario %+v", s)
	}
	if _, err := LoadScenario(filepath.Join(dir, "scenario.txt")); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}

func TestDecodeScenarioUnknownFormat(t *testing.T) {
	if _, err := DecodeScenario(bytes.NewBufferString("{}"), "toml"); err == nil {
		t.Fatalf("expected error")
	}
}
