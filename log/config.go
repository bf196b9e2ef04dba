package log

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"moul.io/zapfilter"
)

// Config allows per-logger levels for named loggers.
// Example:
//
//	defaultLevel: info
//	loggers:
//	  filterengine: debug
//	  chart: debug
type Config struct {
	DefaultLevel string            `yaml:"defaultLevel"`
	Loggers      map[string]string `yaml:"loggers"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading log config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = "info"
	}
	return cfg, nil
}

// Rules converts the config into zapfilter rule syntax,
// for example "debug+:chart,filterengine info+:*".
func (c *Config) Rules() string {
	byLevel := map[string][]string{}
	for name, lvl := range c.Loggers {
		byLevel[lvl] = append(byLevel[lvl], name)
	}
	levels := make([]string, 0, len(byLevel))
	for lvl := range byLevel {
		levels = append(levels, lvl)
	}
	sort.Strings(levels)
	parts := make([]string, 0, len(levels)+1)
	for _, lvl := range levels {
		names := byLevel[lvl]
		sort.Strings(names)
		parts = append(parts, fmt.Sprintf("%s+:%s", lvl, strings.Join(names, ",")))
	}
	parts = append(parts, fmt.Sprintf("%s+:*", c.DefaultLevel))
	return strings.Join(parts, " ")
}

var activeFilter zapfilter.FilterFunc

// UseConfig installs filtering rules applied to all loggers created
// afterwards. Call before New/DevLogger during startup.
func UseConfig(cfg *Config) error {
	filter, err := zapfilter.ParseRules(cfg.Rules())
	if err != nil {
		return fmt.Errorf("invalid log config rules: %w", err)
	}
	activeFilter = filter
	return nil
}

func applyFilter(core zapcore.Core) zapcore.Core {
	if activeFilter == nil {
		return core
	}
	return zapfilter.NewFilteringCore(core, activeFilter)
}
