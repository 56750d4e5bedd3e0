package logging

import "time"

// Config tunes the event router and its sinks.
type Config struct {
	EnabledSinks     []string      `yaml:"enabledSinks"`
	BufferSize       int           `yaml:"bufferSize"`
	MinimumSeverity  Severity      `yaml:"minimumSeverity"`
	DropWarnInterval time.Duration `yaml:"dropWarnInterval"`
	JSONFilePath     string        `yaml:"jsonFilePath"`
	JSONFlushEvery   time.Duration `yaml:"jsonFlushEvery"`
}

// DefaultConfig enables the console sink at info severity.
func DefaultConfig() Config {
	return Config{
		EnabledSinks:     []string{"console"},
		BufferSize:       512,
		MinimumSeverity:  SeverityInfo,
		DropWarnInterval: 5 * time.Second,
		JSONFlushEvery:   2 * time.Second,
	}
}

// HasSink reports whether the named sink is enabled.
func (c Config) HasSink(name string) bool {
	for _, s := range c.EnabledSinks {
		if s == name {
			return true
		}
	}
	return false
}
