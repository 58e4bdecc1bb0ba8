package common

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the google cloud project hosting logging and secrets. It may be empty
	// when the service runs outside of google cloud.
	ProjectID string

	ServiceVersion string

	Env string

	// Production flag indicating if app is running in release mode with a cloud project
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	defaultServiceVersion = "localhost"

	defaultHTTPClientTimeout = 30 * time.Second
)

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	ServiceVersion = GetEnv("SERVICE_VERSION", GetEnv("GAE_VERSION", defaultServiceVersion))

	IsLocalhost = gin.Mode() != gin.ReleaseMode

	switch {
	case !IsLocalhost && ProjectID != "":
		Env = "production"
		Production = true
	default:
		Env = "development"
		Production = false
	}
}

func init() {
	initEnvVariables()
}

// GetEnv returns the value of the environment variable key, or fallback when it is
// unset or empty.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

// GetEnvBool parses a boolean environment variable, returning fallback when it is
// unset or malformed.
func GetEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(GetEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("invalid boolean for %s, using %t", key, fallback)
		return fallback
	}

	return value
}

// GetEnvInt parses an integer environment variable, returning fallback when it is
// unset or malformed.
func GetEnvInt(key string, fallback int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid integer for %s, using %d", key, fallback)
		return fallback
	}

	return value
}

// GetEnvDuration parses a duration environment variable such as "30s".
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration for %s, using %s", key, fallback)
		return fallback
	}

	return value
}

// GetEnvList splits a comma separated environment variable, dropping empty items.
func GetEnvList(key string, fallback []string) []string {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}

	var items []string

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// HTTPClientTimeout is the timeout applied to every outbound vendor HTTP client.
func HTTPClientTimeout() time.Duration {
	return GetEnvDuration("HTTP_CLIENT_TIMEOUT", defaultHTTPClientTimeout)
}
