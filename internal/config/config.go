// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime configuration.
type Config struct {
	GinMode          string
	LogFormat        string // "human" for console output, JSON otherwise. Empty selects by GinMode
	Port             int
	APIURL           *url.URL
	CORSAllowOrigins []string // A single "*" allows all origins
	EnablePprof      bool
	MaxUploadSize    int64 // Maximum request body size for uploads, in bytes
}

// Defaults for all configuration keys.
const (
	DefaultGinMode       = "release"
	DefaultPort          = 8080
	DefaultAPIURL        = "http://localhost:8080"
	DefaultCORSOrigins   = "*"
	DefaultMaxUploadSize = 10 << 20
)

// AllowAllOrigins reports if CORS is open to every origin.
func (c Config) AllowAllOrigins() bool {
	return len(c.CORSAllowOrigins) == 0 || (len(c.CORSAllowOrigins) == 1 && c.CORSAllowOrigins[0] == "*")
}

// HumanLogs reports if logs are written for humans instead of as JSON.
//
// Without an explicit LOG_FORMAT, debug mode logs for humans.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}
	return c.LogFormat == "human"
}

// Load reads the configuration from the environment.
//
// Values in the dotenv files are loaded into the environment first, without
// overriding variables that are already set. Missing files are skipped.
func Load(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.SetDefault("gin_mode", DefaultGinMode)
	v.SetDefault("log_format", "")
	v.SetDefault("port", DefaultPort)
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("cors_allow_origins", DefaultCORSOrigins)
	v.SetDefault("enable_pprof", false)
	v.SetDefault("max_upload_size", DefaultMaxUploadSize)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	apiURL, err := url.Parse(strings.TrimSuffix(v.GetString("api_url"), "/"))
	if err != nil {
		return Config{}, fmt.Errorf("API_URL must be a valid URL: %w", err)
	}

	if apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, fmt.Errorf("API_URL must be an absolute URL, got '%s'", v.GetString("api_url"))
	}

	port := v.GetInt("port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be between 1 and 65535, got '%s'", v.GetString("port"))
	}

	maxUploadSize := v.GetInt64("max_upload_size")
	if maxUploadSize <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_SIZE must be a positive number of bytes, got '%s'", v.GetString("max_upload_size"))
	}

	return Config{
		GinMode:          v.GetString("gin_mode"),
		LogFormat:        v.GetString("log_format"),
		Port:             port,
		APIURL:           apiURL,
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
		MaxUploadSize:    maxUploadSize,
	}, nil
}
