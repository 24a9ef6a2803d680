package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig loads the optional engine config file (config.yaml) from
// ./data/ or the working directory. Callers fall back to viper defaults
// when no file exists.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./data/")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
