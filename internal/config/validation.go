package config

import (
	"fmt"
	"os"
	"strings"
)

// validSSLModes are the sslmode values accepted by libpq/pgx.
var validSSLModes = map[string]bool{
	"disable":     true,
	"allow":       true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// Validate performs fail-fast validation of the whole configuration.
// Returns the first violation wrapped around its sentinel error so callers
// can check categories with errors.Is().
func (c *Config) Validate() error {
	if err := c.validateContent(); err != nil {
		return err
	}
	if err := c.validateEmbedding(); err != nil {
		return err
	}
	return c.validateStorage()
}

func (c *Config) validateContent() error {
	if strings.TrimSpace(c.ContentDir) == "" {
		return fmt.Errorf("%w: content_dir must not be empty", ErrInvalidContentDir)
	}
	return nil
}

func (c *Config) validateEmbedding() error {
	switch c.Provider {
	case ProviderOpenAI:
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY not set (required for provider %q)", ErrMissingAPIKey, c.Provider)
		}
	case ProviderGoogle:
		if os.Getenv("GEMINI_API_KEY") == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY not set (required for provider %q)", ErrMissingAPIKey, c.Provider)
		}
	default:
		return fmt.Errorf("%w: %q (must be one of: openai, google)", ErrInvalidProvider, c.Provider)
	}

	// A model name with whitespace is always a configuration mistake.
	if c.EmbedderModel != strings.TrimSpace(c.EmbedderModel) {
		return fmt.Errorf("%w: %q contains leading or trailing whitespace", ErrInvalidEmbedderModel, c.EmbedderModel)
	}
	return nil
}

func (c *Config) validateStorage() error {
	if strings.TrimSpace(c.PostgresHost) == "" {
		return fmt.Errorf("%w: host must not be empty", ErrInvalidPostgresHost)
	}
	if c.PostgresPort < 1 || c.PostgresPort > 65535 {
		return fmt.Errorf("%w: %d (must be 1-65535)", ErrInvalidPostgresPort, c.PostgresPort)
	}
	if strings.TrimSpace(c.PostgresDBName) == "" {
		return fmt.Errorf("%w: database name must not be empty", ErrInvalidPostgresDBName)
	}
	if !validSSLModes[c.PostgresSSLMode] {
		return fmt.Errorf("%w: %q (must be one of: disable, allow, prefer, require, verify-ca, verify-full)",
			ErrInvalidPostgresSSLMode, c.PostgresSSLMode)
	}
	return nil
}
