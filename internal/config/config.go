package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level farescout configuration.
type Config struct {
	Modules      map[string]Module `mapstructure:"modules"`
	Currency     string            `mapstructure:"currency"`
	AirportsFile string            `mapstructure:"airports_file"`
	Seed         int64             `mapstructure:"seed"`
	Output       Output            `mapstructure:"output"`
}

// Module toggles one analyzer in the pipeline.
type Module struct {
	Enabled bool `mapstructure:"enabled"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// ModuleEnabled reports whether an analyzer should run. Analyzers absent
// from the modules mapping are enabled.
func (c *Config) ModuleEnabled(name string) bool {
	if c == nil || c.Modules == nil {
		return true
	}
	m, ok := c.Modules[name]
	if !ok {
		return true
	}
	return m.Enabled
}

// Default returns the configuration used when no config file exists: every
// analyzer enabled, EUR reporting, colored output.
func Default() *Config {
	modules := make(map[string]Module, len(ModuleNames))
	for _, name := range ModuleNames {
		modules[name] = Module{Enabled: true}
	}
	return &Config{
		Modules:  modules,
		Currency: DefaultCurrency,
		Seed:     DefaultSimulatorSeed,
		Output:   DefaultOutput,
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error; defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("currency", DefaultCurrency)
	v.SetDefault("seed", DefaultSimulatorSeed)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	for _, name := range ModuleNames {
		v.SetDefault("modules."+name+".enabled", true)
	}

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Analyzers never mentioned in the file stay enabled.
	if cfg.Modules == nil {
		cfg.Modules = Default().Modules
	}

	cfg.AirportsFile = expandPath(cfg.AirportsFile)
	return &cfg, nil
}

// DBPath returns the full path to the SQLite price-history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
