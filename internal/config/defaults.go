// Package config provides configuration loading and defaults for farescout.
package config

// DefaultConfigDir is the default location for farescout configuration.
const DefaultConfigDir = "~/.config/farescout"

// DefaultDBName is the filename for the SQLite price-history database.
const DefaultDBName = "farescout.db"

// DefaultConfigFile is the filename for the JSON config.
const DefaultConfigFile = "config.json"

// DefaultCurrency is the currency analyses are reported in.
const DefaultCurrency = "EUR"

// DefaultSimulatorSeed seeds the fare simulator when no seed is configured.
// Zero means seed from the clock.
const DefaultSimulatorSeed = 0

// ModuleNames lists every analyzer that can be toggled via the modules
// mapping, in pipeline order.
var ModuleNames = []string{
	"search",
	"inflation",
	"geo_pricing",
	"historical",
	"fare_rules",
	"platform_compare",
	"fare_tracking",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
