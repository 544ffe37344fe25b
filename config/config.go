package config

import (
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/multa-cli/multa/log"
)

// Config holds the tool-wide settings.
type Config struct {
	// DataDir is the directory holding the per-profile progress files.
	DataDir string
}

var config *Config

const configFileName = "config"

func configDir() string {
	if dir, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(dir, "multa")
	}
	home, err := homedir.Dir()
	if err != nil {
		log.Debug("Unable to locate the home directory: %s.\n", err)
		return ""
	}
	return path.Join(home, ".config", "multa")
}

func defaultDataDir() string {
	if dir, ok := os.LookupEnv("XDG_DATA_HOME"); ok {
		return path.Join(dir, "multa")
	}
	home, err := homedir.Dir()
	if err != nil {
		log.Debug("Unable to locate the home directory: %s.\n", err)
		return "multa"
	}
	return path.Join(home, ".local", "share", "multa")
}

func loadConfiguration() Config {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("multa")
	v.AutomaticEnv()
	v.SetDefault("data_dir", defaultDataDir())

	if err := v.ReadInConfig(); err != nil {
		log.Debug("No configuration file loaded: %s. Using defaults.\n", err)
	} else {
		log.Debug("Loaded configuration from `%s`.\n", v.ConfigFileUsed())
	}

	config := Config{
		DataDir: v.GetString("data_dir"),
	}
	log.Debug("Running with configuration: %+v.\n", config)
	return config
}

// GetConfig returns the tool configuration, loading it on first use.
func GetConfig() Config {
	if config == nil {
		loadedConfig := loadConfiguration()
		config = &loadedConfig
	}

	return *config
}
