package config

import "time"

const (
	// DefaultGraphURL is the Graph API host
	DefaultGraphURL = "https://graph.facebook.com"
	// DefaultAPIVersion is the Graph API version used when none is configured
	DefaultAPIVersion = "v19.0"
	// DefaultTimeout bounds a single Graph request
	DefaultTimeout = 30 * time.Second
	// DefaultEnvFile is loaded when present
	DefaultEnvFile = ".env"
	// DefaultMessageWidth is how many characters of a failure message are printed
	DefaultMessageWidth = 70
)

// Environment variable names read by Load
const (
	EnvPageID      = "FB_PAGE_ID"
	EnvAccessToken = "FB_ACCESS_TOKEN"
	EnvAPIVersion  = "FB_API_VERSION"
	EnvGraphURL    = "FB_GRAPH_URL"
	EnvTimeout     = "FB_TIMEOUT"
)
