package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-tui/internal/chat"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Chat     Chat   `yaml:"chat"`
}

type Chat struct {
	Enabled string `yaml:"enabled" env:"ENABLE_CHATBOT" env-default:""`
	APIKey  string `yaml:"api-key" env:"OPENAI_API_KEY" env-default:""`
	APIBase string `yaml:"api-base" env:"OPENAI_API_BASE" env-default:"https://api.openai.com/v1"`
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

// Load reads the config file at path when it exists, otherwise the environment only.
// Environment variables always win over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations from config.yml and the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// ChatConfig freezes the chat settings into the value handed to the widget.
func (that *Config) ChatConfig() chat.Config {
	return chat.NewConfig(that.Chat.Enabled, that.Chat.APIKey, that.Chat.APIBase, that.Chat.Model)
}
