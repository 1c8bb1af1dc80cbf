package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds authentication configuration. Local email/password login
// always works; OAuth providers are optional and declared in auth.yaml.
type AuthConfig struct {
	JWTSecret   string                    `yaml:"jwt_secret"`
	RedirectURL string                    `yaml:"redirect_url"`
	Providers   map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds configuration for one OAuth provider
type ProviderConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	UserInfoURL  string   `yaml:"userinfo_url"`
	Scopes       []string `yaml:"scopes"`
}

// LoadAuthConfig loads authentication configuration from a YAML file with
// environment variable overrides for the secrets.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	if configPath == "" {
		configPath = "auth.yaml"
	}

	config := &AuthConfig{
		RedirectURL: "http://localhost:3000",
		Providers:   map[string]ProviderConfig{},
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing auth config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading auth config file: %w", err)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if redirect := os.Getenv("AUTH_REDIRECT_URL"); redirect != "" {
		config.RedirectURL = redirect
	}
	if google, exists := config.Providers["google"]; exists {
		if id := os.Getenv("GOOGLE_CLIENT_ID"); id != "" {
			google.ClientID = id
		}
		if secret := os.Getenv("GOOGLE_CLIENT_SECRET"); secret != "" {
			google.ClientSecret = secret
		}
		config.Providers["google"] = google
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}
	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
		if provider.AuthURL == "" || provider.TokenURL == "" || provider.UserInfoURL == "" {
			return fmt.Errorf("auth_url, token_url and userinfo_url are required for provider '%s'", providerName)
		}
	}

	return nil
}
