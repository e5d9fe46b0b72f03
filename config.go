package announcer

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

type Config struct {
	Discord  DiscordConfig  `toml:"discord"`
	Tracking TrackingConfig `toml:"tracking"`
	Events   EventsConfig   `toml:"events"`
}

type DiscordConfig struct {
	Token   string `toml:"token"`
	GuildID string `toml:"guild_id"`
	Channel string `toml:"channel"`
}

type TrackingConfig struct {
	BaseURL string `toml:"base_url"`
	Entity  string `toml:"entity"`
	APIKey  string `toml:"api_key"`
}

type EventsConfig struct {
	BrokerURL string `toml:"broker_url"`
}

// LoadConfig reads the optional credentials file. Values set here take
// precedence over the corresponding environment variables.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	tree, err := toml.Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	var cfg Config
	if err := tree.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
