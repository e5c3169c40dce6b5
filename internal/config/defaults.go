package config

// Default value constants.
const (
	DefaultNpmBin        = "npm"
	DefaultNpxBin        = "npx"
	DefaultBranch        = "main"
	DefaultServerPort    = 3000
	DefaultLogLevel      = "warn"
	DefaultConfigDirName = "genova"
	DefaultConfigFile    = "config.yaml"

	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "GENOVA_CONFIG"
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// NewDefaultConfig returns a Config with every field set to its default.
func NewDefaultConfig() *Config {
	return &Config{
		NpmBin:        DefaultNpmBin,
		NpxBin:        DefaultNpxBin,
		DefaultBranch: DefaultBranch,
		ServerPort:    DefaultServerPort,
		LogLevel:      DefaultLogLevel,
	}
}

// applyDefaults fills zero-valued fields left empty by the file.
func applyDefaults(cfg *Config) {
	if cfg.NpmBin == "" {
		cfg.NpmBin = DefaultNpmBin
	}
	if cfg.NpxBin == "" {
		cfg.NpxBin = DefaultNpxBin
	}
	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = DefaultBranch
	}
	if cfg.ServerPort == 0 {
		cfg.ServerPort = DefaultServerPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
