package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	Version string
	Cookie  Cookie
	// DSN of the cookie jar database; empty keeps cookies in memory.
	DSN           string
	SweepInterval time.Duration
}

// ServerConfig is the view of [StructuredConfig] used by the HTTP server.
type ServerConfig struct {
	Version        string
	Cookie         Cookie
	HTTPAddress    string
	RequestTimeout time.Duration
}

// GetClientConfig loads the merged configuration and returns the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientView(), nil
}

// GetServerConfig loads the merged configuration and returns the server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ClientView maps the fields relevant to the terminal client.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		Version:       cfg.App.Version,
		Cookie:        cfg.Cookie,
		DSN:           cfg.Storage.DB.DSN,
		SweepInterval: cfg.Workers.SweepInterval,
	}
}

// ServerView maps the fields relevant to the HTTP server.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		Cookie:         cfg.Cookie,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
}
