package logger

// Output encodings understood by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" yaml:"level"`
	// Format is "json" (default) or "console".
	Format string `env:"LOG_FORMAT" yaml:"format"`
	// Development disables sampling so every entry is written.
	Development bool `yaml:"development"`
	// OutputPaths lists URLs or file paths to write to.
	OutputPaths []string `yaml:"output_paths"`
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = []string{"stdout"}
	}
}
