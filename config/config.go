package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/whisperkit/logger"
	"github.com/skillsenselab/whisperkit/server"
	"github.com/skillsenselab/whisperkit/transcription/whispercpp"
)

var validate = validator.New()

// Config is the full application configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging logger.Config     `yaml:"logging" mapstructure:"logging"`
	Engine  whispercpp.Config `yaml:"engine" mapstructure:"engine"`
	Server  server.Config     `yaml:"server" mapstructure:"server"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "whisperkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate service name into logging so Init() uses the right tag.
	if c.Logging.ServiceName == "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Engine.ApplyDefaults()
	c.Server.ApplyDefaults()
}

// Validate checks all sections.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("config.engine: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return nil
}
