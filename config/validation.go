package config

import (
	"fmt"
	"net/url"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections <= 0 {
		return fmt.Errorf("invalid max connections: %d", config.Database.MaxConnections)
	}

	parsed, err := url.Parse(config.Site.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid site base url: %q", config.Site.BaseURL)
	}

	return nil
}
