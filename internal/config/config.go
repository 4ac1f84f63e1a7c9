package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aziis98/trim-margin/internal/logging"
	"github.com/aziis98/trim-margin/margin"
	"github.com/spf13/viper"
)

// Config holds global application configuration
type Config struct {
	Marker    string
	Prefix    string
	Strict    bool
	Extension string
	DBName    string
	DBPath    string
	Verbose   bool
}

// New creates a new configuration with defaults
func New() *Config {
	v := viper.New()
	applyDefaults(v)
	return fromViper(v)
}

// Load resolves configuration with precedence: defaults < file < env < bound flags.
// A missing config file is not an error, a broken one is.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "trim-margin"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "trim-margin"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		logging.Debugf("Loaded config from %s", v.ConfigFileUsed())
	}

	// Environment variables: TRIM_MARGIN_*
	v.SetEnvPrefix("trim_margin")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Marker:    v.GetString("marker"),
		Prefix:    v.GetString("prefix"),
		Strict:    v.GetBool("strict"),
		Extension: v.GetString("extension"),
		DBName:    v.GetString("db_name"),
		Verbose:   v.GetBool("verbose"),
	}
}

// Validate checks the values that would otherwise surface as odd trimming results.
func (c *Config) Validate() error {
	var problems []string
	if c.Prefix == "" && utf8.RuneCountInString(c.Marker) != 1 {
		problems = append(problems, fmt.Sprintf("marker must be a single character, got %q", c.Marker))
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		problems = append(problems, fmt.Sprintf("extension must look like \".margin\", got %q", c.Extension))
	}
	if strings.TrimSpace(c.DBName) == "" {
		problems = append(problems, "db_name is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Trimmer returns the margin trimmer described by the configuration. A
// non-empty prefix wins over the marker.
func (c *Config) Trimmer() margin.Trimmer {
	if c.Prefix != "" {
		return margin.NewPrefixTrimmer(c.Prefix)
	}
	r, size := utf8.DecodeRuneInString(c.Marker)
	if r == utf8.RuneError && size <= 1 {
		return margin.Trimmer{}
	}
	return margin.NewTrimmer(r)
}

// FindExistingDBPath searches for an existing render cache up the directory
// tree, starting from the working directory.
func (c *Config) FindExistingDBPath() error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return c.findDBPathFrom(currentDir)
}

func (c *Config) findDBPathFrom(currentDir string) error {
	for {
		dbPath := filepath.Join(currentDir, c.DBName)
		logging.Debugf("Searching for render cache at: %s", dbPath)
		if _, err := os.Stat(dbPath); err == nil {
			c.DBPath = dbPath
			logging.Debugf("Found render cache at: %s", dbPath)
			return nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return fmt.Errorf("no render cache %s found in directory tree", c.DBName)
}

// CreateDBPath points the configuration at a new cache in the current directory
func (c *Config) CreateDBPath() error {
	absPath, err := filepath.Abs(c.DBName)
	if err != nil {
		return fmt.Errorf("failed to create render cache path: %w", err)
	}
	c.DBPath = absPath
	return nil
}

// FindOrCreateDBPath finds an existing render cache or creates a new path for one
func (c *Config) FindOrCreateDBPath() error {
	if err := c.FindExistingDBPath(); err == nil {
		return nil
	}
	return c.CreateDBPath()
}
