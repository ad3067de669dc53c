package splitwise

import "os"

// DefaultBaseURL is the production Splitwise API endpoint.
const DefaultBaseURL = "https://secure.splitwise.com/api/v3.0"

// Config carries the Splitwise API settings. Only APIKey is used for
// authentication; the OAuth settings are accepted but the OAuth flow is not
// implemented.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	APIKey         string

	// BaseURL overrides the API endpoint, mainly for tests. Empty means
	// DefaultBaseURL.
	BaseURL string
}

// ConfigFromEnv reads the Splitwise settings from the process environment.
func ConfigFromEnv() Config {
	return Config{
		ConsumerKey:    os.Getenv("SPLITWISE_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("SPLITWISE_CONSUMER_SECRET"),
		AccessToken:    os.Getenv("SPLITWISE_ACCESS_TOKEN"),
		APIKey:         os.Getenv("SPLITWISE_API_KEY"),
	}
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}
