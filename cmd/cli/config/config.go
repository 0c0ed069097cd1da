package config

import (
	"os"
	"strings"
	"sync"
)

const (
	// DefaultAPIURL matches the API's default PORT.
	DefaultAPIURL = "http://localhost:3000"
	// EnvAPIURL overrides DefaultAPIURL.
	EnvAPIURL = "EXLOG_API_URL"
)

var (
	mu       sync.RWMutex
	override string
)

// APIURL returns the base URL for the Exercise Tracker API, without a trailing slash.
// Precedence: --api-url flag, then EXLOG_API_URL, then DefaultAPIURL.
func APIURL() string {
	mu.RLock()
	v := override
	mu.RUnlock()
	if v == "" {
		v = os.Getenv(EnvAPIURL)
	}
	if v == "" {
		v = DefaultAPIURL
	}
	return strings.TrimRight(v, "/")
}

// SetAPIURL sets the flag override. An empty value clears it.
func SetAPIURL(u string) {
	mu.Lock()
	override = u
	mu.Unlock()
}
