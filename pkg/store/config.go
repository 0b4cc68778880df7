package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the key-value store lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from, in order: the COUNTDOWN_PATH env
// var, a .countdown config file in the working directory (or the directory
// named by COUNTDOWN_CONFIG_PATH), then the ~/.countdown.db default.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.countdown.db")
	viper.SetConfigName(".countdown") // .yaml is implicit
	viper.SetEnvPrefix("COUNTDOWN")
	viper.AutomaticEnv()

	if override := os.Getenv("COUNTDOWN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
