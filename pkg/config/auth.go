package config

import "github.com/smarter-travel-media/artificium/pkg/auth"

// AuthConfig holds the authentication configuration for a server. At most one
// scheme should be set; when several are set the first non-nil one in struct
// order wins.
type AuthConfig struct {
	Basic  *BasicAuth  `yaml:"basic,omitempty"`
	Bearer *BearerAuth `yaml:"bearer,omitempty"`
	Header *HeaderAuth `yaml:"header,omitempty"`
	APIKey *APIKeyAuth `yaml:"api_key,omitempty"`
}

// BasicAuth holds configuration for HTTP Basic Authentication.
type BasicAuth struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// BearerAuth holds configuration for Bearer token authentication.
type BearerAuth struct {
	Token string `yaml:"token"`
}

// HeaderAuth holds configuration for custom header-based authentication.
type HeaderAuth struct {
	Headers map[string]string `yaml:"headers"`
}

// APIKeyAuth holds configuration for Artifactory API key authentication.
type APIKeyAuth struct {
	Key string `yaml:"key"`
}

// ToAuthenticator converts the configuration to an Authenticator. It returns
// nil when no scheme is configured, or when basic auth is missing either the
// username or the password (partial credentials mean anonymous access).
func (c *AuthConfig) ToAuthenticator() auth.Authenticator {
	if c == nil {
		return nil
	}
	switch {
	case c.Basic != nil:
		if c.Basic.Username == "" || c.Basic.Password == "" {
			return nil
		}
		return auth.BasicAuth{Username: c.Basic.Username, Password: c.Basic.Password}
	case c.Bearer != nil:
		return auth.BearerAuth{Token: c.Bearer.Token}
	case c.Header != nil:
		return auth.HeaderAuth{Headers: c.Header.Headers}
	case c.APIKey != nil:
		return auth.NewAPIKeyAuth(c.APIKey.Key)
	}
	return nil
}
