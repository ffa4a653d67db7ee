package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/agentsync/internal/backup"
	"github.com/thoreinstein/agentsync/internal/errors"
	"github.com/thoreinstein/agentsync/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "agentsync"

// Default source repository layout.
const (
	DefaultMCPFile   = "mcp-servers.json"
	DefaultSkillsDir = "skills"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version        int                       `mapstructure:"version" yaml:"version"`
	Source         SourceConfig              `mapstructure:"source" yaml:"source"`
	DefaultTargets []string                  `mapstructure:"default_targets" yaml:"default_targets"`
	Targets        map[string]TargetOverride `mapstructure:"targets" yaml:"targets"`
	Backup         BackupConfig              `mapstructure:"backup" yaml:"backup"`
}

// SourceConfig locates the source-of-truth repository.
type SourceConfig struct {
	// Dir is the source repository root.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// MCPFile is the server definition file, relative to Dir unless absolute.
	MCPFile string `mapstructure:"mcp_file" yaml:"mcp_file"`

	// SkillsDir is the skills directory, relative to Dir unless absolute.
	SkillsDir string `mapstructure:"skills_dir" yaml:"skills_dir"`
}

// TargetOverride contains per-target configuration overrides.
type TargetOverride struct {
	ConfigPath string `mapstructure:"config_path" yaml:"config_path"`
	SkillDir   string `mapstructure:"skill_dir" yaml:"skill_dir"`
}

// BackupConfig holds snapshot settings.
type BackupConfig struct {
	// Retention is the number of snapshots kept per target.
	Retention int `mapstructure:"retention" yaml:"retention"`
}

// MCPPath returns the absolute path of the source server definition file.
func (c *Config) MCPPath() string {
	return c.Source.resolve(c.Source.MCPFile, DefaultMCPFile)
}

// SkillsPath returns the absolute path of the source skills directory.
func (c *Config) SkillsPath() string {
	return c.Source.resolve(c.Source.SkillsDir, DefaultSkillsDir)
}

func (s SourceConfig) resolve(value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(s.Dir, value)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("AGENTSYNC")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_targets", paths.Targets())
	viper.SetDefault("source.mcp_file", DefaultMCPFile)
	viper.SetDefault("source.skills_dir", DefaultSkillsDir)
	viper.SetDefault("backup.retention", backup.DefaultRetention)
}

// Default returns a configuration with default values and no source dir.
func Default() *Config {
	return &Config{
		Version:        1,
		DefaultTargets: paths.Targets(),
		Source: SourceConfig{
			MCPFile:   DefaultMCPFile,
			SkillsDir: DefaultSkillsDir,
		},
		Backup: BackupConfig{Retention: backup.DefaultRetention},
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file; a missing explicit
// file is an error. With an empty path the default locations are searched
// and defaults are used when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &cfg, nil
}

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	for _, target := range cfg.DefaultTargets {
		if !paths.ValidTarget(target) {
			errs = append(errs, errors.Wrapf(errors.ErrUnknownTarget, "%q", target))
		}
	}
	for target := range cfg.Targets {
		if !paths.ValidTarget(target) {
			errs = append(errs, errors.Wrapf(errors.ErrUnknownTarget, "%q", target))
		}
	}

	for _, p := range []struct {
		field string
		value string
	}{
		{"source.dir", cfg.Source.Dir},
		{"source.mcp_file", cfg.Source.MCPFile},
		{"source.skills_dir", cfg.Source.SkillsDir},
	} {
		if err := validatePath(p.value); err != nil {
			errs = append(errs, errors.Wrapf(err, "%s: %q", p.field, p.value))
		}
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, errors.New("backup.retention must be non-negative"))
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default").
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}
