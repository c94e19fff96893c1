// Package config loads application configuration from an optional yaml file
// and environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	cfgKeySaveDir   = "save_dir"
	cfgKeyScoresDB  = "scores_db"
	cfgKeySeed      = "seed"
	cfgKeyTrailFile = "trail_file"

	defaultSaveDir  = ".saves"
	defaultScoresDB = "scores.db"
)

// Config holds the application configuration.
type Config struct {
	SaveDir   string
	ScoresDB  string
	Seed      int64
	TrailFile string // optional yaml trail; empty means the builtin route
}

// Load reads config.yaml from the working directory (or the explicit file
// given with --config). A missing config file is not an error; defaults and
// WAGONTRAIL_* environment variables apply.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeySaveDir, defaultSaveDir)
	v.SetDefault(cfgKeyScoresDB, defaultScoresDB)
	v.SetDefault(cfgKeySeed, 0)
	v.SetDefault(cfgKeyTrailFile, "")

	v.SetEnvPrefix("WAGONTRAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config.yaml is fine; anything else is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		SaveDir:   v.GetString(cfgKeySaveDir),
		ScoresDB:  v.GetString(cfgKeyScoresDB),
		Seed:      v.GetInt64(cfgKeySeed),
		TrailFile: v.GetString(cfgKeyTrailFile),
	}, nil
}
