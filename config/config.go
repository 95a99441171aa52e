package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/metrics"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/core/model"
)

// Config aggregates all service settings.
type Config struct {
	Leveling model.SchedulingParams `json:"leveling"`
	Metrics  metrics.Config         `json:"metrics"`
	Logging  LoggingConfig          `json:"logging"`
}

// Load reads the configuration from a JSON or YAML file with optional
// LVL_-prefixed environment overrides (LVL_LEVELING__BUFFER_DAYS=5).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("LVL_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lvl_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Leveling.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Logging.SetDefaults()
	if err := cfg.Leveling.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
