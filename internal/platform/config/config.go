// Package config builds the process-wide configuration struct. It is
// constructed once at startup and passed by reference into constructors;
// nothing reads ambient globals at call sites.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RoutingMode selects how a request is mapped to a tenant routing key.
type RoutingMode string

const (
	ModeSubdomain    RoutingMode = "subdomain"
	ModePath         RoutingMode = "path"
	ModeCustomDomain RoutingMode = "custom-domain"
)

// APIGroup names one logical group of content-service endpoints. Each group
// carries its own base URL and bearer token, not a shared credential.
type APIGroup string

const (
	GroupAuth          APIGroup = "auth"
	GroupPages         APIGroup = "pages"
	GroupAnimals       APIGroup = "animals"
	GroupTemplates     APIGroup = "templates"
	GroupOrganizations APIGroup = "organizations"
	GroupSiteContent   APIGroup = "site_content"
)

// Endpoint is one API group's base URL and bearer token pair.
type Endpoint struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// Multitenancy holds tenant routing options.
type Multitenancy struct {
	Mode       RoutingMode `yaml:"mode"`
	BaseDomain string      `yaml:"base_domain"`
	AdminLabel string      `yaml:"admin_label"`
	AdminPath  string      `yaml:"admin_path"`
	Isolation  bool        `yaml:"isolation"`
}

// Embed holds capability-token options for the widget surface.
type Embed struct {
	SigningSecret string        `yaml:"signing_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	DemoEnabled   bool          `yaml:"demo_enabled"`
}

// Config is the full server configuration.
type Config struct {
	Addr        string `yaml:"addr"`
	Environment string `yaml:"environment"`

	Multitenancy Multitenancy `yaml:"multitenancy"`
	Embed        Embed        `yaml:"embed"`

	// StaffSigningKey verifies staff bearer tokens on the admin surface.
	StaffSigningKey string `yaml:"staff_signing_key"`
	// AdminKeyHash is the bcrypt hash of the key that authorizes token minting.
	AdminKeyHash string `yaml:"admin_key_hash"`

	Endpoints map[APIGroup]Endpoint `yaml:"endpoints"`
}

// IsProduction reports whether the demo-token bypass must stay disabled.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load builds the configuration from an optional YAML file overlaid with
// environment variables. Env always wins so deployments can override a
// checked-in file without editing it.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds the configuration from environment variables alone.
func FromEnv() (*Config, error) {
	return Load("")
}

func defaults() *Config {
	return &Config{
		Addr:        ":8080",
		Environment: "development",
		Multitenancy: Multitenancy{
			Mode:       ModeSubdomain,
			BaseDomain: "pawprint.local",
			AdminLabel: "app",
			AdminPath:  "app",
		},
		Embed: Embed{
			TokenTTL:    365 * 24 * time.Hour,
			DemoEnabled: true,
		},
		Endpoints: make(map[APIGroup]Endpoint),
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Addr, "PAWPRINT_ADDR")
	setString(&cfg.Environment, "PAWPRINT_ENV")

	if v := os.Getenv("PAWPRINT_MULTITENANCY_MODE"); v != "" {
		cfg.Multitenancy.Mode = RoutingMode(v)
	}
	setString(&cfg.Multitenancy.BaseDomain, "PAWPRINT_BASE_DOMAIN")
	setString(&cfg.Multitenancy.AdminLabel, "PAWPRINT_ADMIN_LABEL")
	setString(&cfg.Multitenancy.AdminPath, "PAWPRINT_ADMIN_PATH")
	if v := os.Getenv("PAWPRINT_TENANT_ISOLATION"); v != "" {
		cfg.Multitenancy.Isolation = v == "true" || v == "1"
	}

	setString(&cfg.Embed.SigningSecret, "PAWPRINT_EMBED_SECRET")
	if v := os.Getenv("PAWPRINT_EMBED_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Embed.TokenTTL = d
		}
	}
	if v := os.Getenv("PAWPRINT_EMBED_DEMO"); v != "" {
		cfg.Embed.DemoEnabled = v == "true" || v == "1"
	}

	setString(&cfg.StaffSigningKey, "PAWPRINT_STAFF_SIGNING_KEY")
	setString(&cfg.AdminKeyHash, "PAWPRINT_ADMIN_KEY_HASH")

	for _, g := range []APIGroup{GroupAuth, GroupPages, GroupAnimals, GroupTemplates, GroupOrganizations, GroupSiteContent} {
		prefix := "PAWPRINT_API_" + strings.ToUpper(string(g))
		ep := cfg.Endpoints[g]
		setString(&ep.BaseURL, prefix+"_URL")
		setString(&ep.Token, prefix+"_TOKEN")
		if ep.BaseURL != "" || ep.Token != "" {
			cfg.Endpoints[g] = ep
		}
	}

	// The demo bypass must never survive into production builds.
	if cfg.IsProduction() {
		cfg.Embed.DemoEnabled = false
	}
}

func (c *Config) validate() error {
	switch c.Multitenancy.Mode {
	case ModeSubdomain, ModePath, ModeCustomDomain:
	default:
		return fmt.Errorf("unknown multitenancy mode %q", c.Multitenancy.Mode)
	}
	if c.Multitenancy.BaseDomain == "" {
		return fmt.Errorf("base domain cannot be empty")
	}
	if c.IsProduction() && c.Embed.SigningSecret == "" {
		return fmt.Errorf("embed signing secret is required in production")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
