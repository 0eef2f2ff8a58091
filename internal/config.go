package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jklemke/obsidian-to-jsonld/internal/skos"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vault  VaultConfig       `yaml:"vault"`
	Site   SiteConfig        `yaml:"site"`
	Output OutputConfig      `yaml:"output"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	if err := c.Site.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.SQLite.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds preview server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// VaultConfig holds the path to the Markdown vault directory.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SiteConfig holds the identity of the published vocabulary. Graph URIs
// and page paths are derived from it, so Domain and Version are part of
// the wire format.
type SiteConfig struct {
	Domain     string `yaml:"domain"`
	Version    string `yaml:"version"`
	SchemeSlug string `yaml:"scheme_slug"`
	Title      string `yaml:"title"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Domain, validation.Required),
		validation.Field(&c.Version, validation.Required),
		validation.Field(&c.SchemeSlug, validation.Required),
	)
}

// ToSite converts the config section into the skos.Site identity value.
func (c *SiteConfig) ToSite() skos.Site {
	return skos.Site{
		Domain:     strings.TrimRight(c.Domain, "/"),
		Version:    c.Version,
		SchemeSlug: c.SchemeSlug,
		Title:      c.Title,
	}
}

// OutputConfig holds the output directory for the generated site.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// SQLiteConfig holds the concept catalog database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8899,
			},
		},
		Vault: VaultConfig{
			Path: "./vault",
		},
		Site: SiteConfig{
			Domain:     "https://example.test",
			Version:    "0.0.1",
			SchemeSlug: "concept-scheme",
			Title:      "Concept Scheme",
		},
		Output: OutputConfig{
			Path: "./public",
		},
		SQLite: SQLiteConfig{
			Path: "./concepts.db",
		},
	}
}
