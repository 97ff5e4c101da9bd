// Package pipeline joins six state-keyed source tables into one
// denormalized table of hate-crime statistics and derived ratio
// features, written as a single CSV for spreadsheet consumers.
package pipeline

import (
	"errors"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Warehouse points the optional database sink at a table.
type Warehouse struct {
	Driver    string `mapstructure:"driver" yaml:"driver"`
	DSN       string `mapstructure:"dsn" yaml:"dsn"`
	Table     string `mapstructure:"table" yaml:"table"`
	Overwrite bool   `mapstructure:"overwrite" yaml:"overwrite"`
}

// Config holds the six input paths, the output path and the optional
// warehouse sink. The zero-config defaults reproduce a plain run over
// the conventional filenames.
type Config struct {
	HateCrimes string `mapstructure:"hate_crimes" yaml:"hate_crimes"`
	Reporting  string `mapstructure:"reporting" yaml:"reporting"`
	Population string `mapstructure:"population" yaml:"population"`
	Legal      string `mapstructure:"legal" yaml:"legal"`
	Social     string `mapstructure:"social" yaml:"social"`
	News       string `mapstructure:"news" yaml:"news"`

	Output string `mapstructure:"output" yaml:"output"`

	Warehouse Warehouse `mapstructure:"warehouse" yaml:"warehouse"`
}

func DefaultConfig() Config {
	return Config{
		HateCrimes: "data/hate_crimes.csv",
		Reporting:  "data/agency_reporting.csv",
		Population: "data/lgbt_population.csv",
		Legal:      "data/legal_protections.csv",
		Social:     "data/social_mentions.csv",
		News:       "data/news_mentions.csv",
		Output:     "hate_crimes_joined.csv",
		Warehouse: Warehouse{
			Table: "hate_crimes_joined",
		},
	}
}

// LoadConfig reads a YAML config. With an empty path it looks for
// statejoin.yaml in the working directory and falls back to the
// defaults when none exists; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("statejoin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if e := v.ReadInConfig(); e != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(e, &notFound) {
			return cfg, nil
		}

		return cfg, e
	}

	if e := v.Unmarshal(&cfg); e != nil {
		return cfg, e
	}

	return cfg, nil
}

// YAML renders the config, used to seed a starter file.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
