package inputs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// Scenario is a what-if planning scenario loaded from disk: one project
// window plus the raw task and employee records to level.
type Scenario struct {
	Project struct {
		ID    string    `json:"id" yaml:"id"`
		Name  string    `json:"name" yaml:"name"`
		Start time.Time `json:"start" yaml:"start"`
		End   time.Time `json:"end" yaml:"end"`
	} `json:"project" yaml:"project"`
	Tasks     []RawTask     `json:"tasks" yaml:"tasks"`
	Employees []RawEmployee `json:"employees" yaml:"employees"`
}

// ProjectModel converts the scenario header to the core project type.
func (s Scenario) ProjectModel() model.Project {
	return model.Project{ID: s.Project.ID, Name: s.Project.Name, Start: s.Project.Start, End: s.Project.End}
}

// LoadScenario reads a Scenario from a JSON or YAML file.
func LoadScenario(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, err
	}
	defer func() { _ = f.Close() }()
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return DecodeScenario(f, ext)
}

// DecodeScenario reads from r to decode a Scenario.
func DecodeScenario(r io.Reader, format string) (Scenario, error) {
	var s Scenario
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&s); err != nil {
			return s, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&s); err != nil {
			return s, err
		}
	default:
		return s, fmt.Errorf("unsupported format: %s", format)
	}
	if s.Project.End.Before(s.Project.Start) {
		return s, fmt.Errorf("project end %s before start %s",
			s.Project.End.Format("2006-01-02"), s.Project.Start.Format("2006-01-02"))
	}
	return s, nil
}
