package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// OAuthClient wraps the OAuth2 flow for one configured provider
type OAuthClient struct {
	name   string
	config *ProviderConfig
}

// OAuthProfile is the subset of the provider's userinfo payload we use
type OAuthProfile struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
	Surname   string `json:"family_name"`
	Picture   string `json:"picture"`
}

// NewOAuthClient creates a new OAuth client for a provider
func NewOAuthClient(name string, config *ProviderConfig) *OAuthClient {
	return &OAuthClient{name: name, config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for this provider
func (c *OAuthClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       c.config.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.config.AuthURL,
			TokenURL: c.config.TokenURL,
		},
	}
}

// GetUserProfile fetches the userinfo document with the granted access token
func (c *OAuthClient) GetUserProfile(ctx context.Context, accessToken string) (*OAuthProfile, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, ts)

	resp, err := client.Get(c.config.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var profile OAuthProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider %s did not return an email address", c.name)
	}

	return &profile, nil
}
