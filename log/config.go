package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
	"moul.io/zapfilter"
)

// Config describes a logger setup read from a yaml file.
// Filters use the zapfilter rule syntax, for example
// "debug:store* info:analysis.*".
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read log config: %w", err)
	}
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("could not parse log config: %w", err)
	}
	return ret, nil
}

// NewWithConfig creates a json logger honoring the filter rules of cfg.
// Entries matching no rule are emitted at DefaultLevel and above.
func NewWithConfig(w io.Writer, cfg *Config, opts ...Option) (*Logger, error) {
	level := InfoLevel
	if cfg.DefaultLevel != "" {
		var err error
		if level, err = ParseLevel(cfg.DefaultLevel); err != nil {
			return nil, err
		}
	}
	core := zapcore.NewCore(jsonEncoder(), zapcore.AddSync(w), zapcore.DebugLevel)
	if len(cfg.Filters) > 0 {
		// entries matching none of the rules fall back to the default level
		spec := strings.Join(cfg.Filters, " ") +
			fmt.Sprintf(" %s+:*", level.String())
		rules, err := zapfilter.ParseRules(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid log filter rules: %w", err)
		}
		core = zapfilter.NewFilteringCore(core, rules)
	} else {
		core = zapcore.NewCore(jsonEncoder(), zapcore.AddSync(w), level)
	}
	return &Logger{l: zap.New(core, opts...), level: level}, nil
}
