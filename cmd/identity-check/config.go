package main

import (
	"github.com/sherifabdlnaby/configuro"
)

// Config values can be set using either environment variables with `CONFIG_`
// prefix or config.yml file placed in working directory.
// See https://github.com/sherifabdlnaby/configuro.
type Config struct {
	Logging     Logging
	Policy      Policy
	Guid        Guid
	Identifiers []Identifier
}

type Logging struct {
	Level  string
	Format string
}

type Policy struct {
	MaxLength int
}

type Guid struct {
	Lenient bool
}

type Identifier struct {
	Value    string
	Category string
}

func readConfig() (*Config, error) {
	loader, err := configuro.NewConfig()
	if err != nil {
		return nil, err
	}

	// Default config values.
	config := &Config{
		Logging: Logging{
			Level: "info",
		},
		Policy: Policy{
			MaxLength: 1024,
		},
	}

	err = loader.Load(config)
	if err != nil {
		return nil, err
	}

	err = loader.Validate(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
