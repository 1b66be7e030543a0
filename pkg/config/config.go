package config

// Config is the effective configuration
type Config struct {
	Define       []string          `koanf:"define" yaml:"define" toml:"define"`
	Log          Log               `koanf:"log" yaml:"log" toml:"log"`
	Library      Library           `koanf:"library" yaml:"library" toml:"library"`
	Instantiate  Instantiate       `koanf:"instantiate" yaml:"instantiate" toml:"instantiate"`
	Replacements map[string]string `koanf:"replacements" yaml:"replacements" toml:"replacements"`
}

// Log controls logging
type Log struct {
	Verbosity int  `koanf:"verbosity" yaml:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" yaml:"file" toml:"file"`
}

// Library locates named templates
type Library struct {
	Dir string `koanf:"dir" yaml:"dir" toml:"dir"`
}

// Instantiate holds defaults for the instantiate command
type Instantiate struct {
	DryRun  bool   `koanf:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Archive string `koanf:"archive" yaml:"archive" toml:"archive"`
}

// LibraryDir returns the configured library directory or the default one
func (c *Config) LibraryDir() string {
	if c.Library.Dir != "" {
		return c.Library.Dir
	}
	return DefaultLibraryDir()
}
