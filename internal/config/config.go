package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error merging test config file", "error", err)
			}
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// GetOpenMeteoAPIURL returns the base URL of the Open-Meteo forecast endpoint.
func GetOpenMeteoAPIURL() string {
	initConfig()
	url := viper.GetString("openmeteo.api_url")
	if url == "" {
		url = "https://api.open-meteo.com/v1/forecast"
	}
	return url
}

// GetLocation returns the fixed forecast coordinates. The defaults are the
// coordinates the app was built around; the config file only overrides them.
func GetLocation() (latitude, longitude float64) {
	initConfig()
	latitude = viper.GetFloat64("location.latitude")
	longitude = viper.GetFloat64("location.longitude")
	if latitude == 0 && longitude == 0 {
		latitude = 31.77
		longitude = -106.50
	}
	return
}

// GetServerPort returns the HTTP listen port. A PORT environment variable
// (optionally loaded from .env) takes precedence over the config file.
func GetServerPort() string {
	_ = godotenv.Load()
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	initConfig()
	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetServerTimeout returns the named server timeout as a time.Duration.
// Falls back to the given default if unset or invalid.
func GetServerTimeout(key string, fallback time.Duration) time.Duration {
	initConfig()
	durStr := viper.GetString("server." + key)
	if durStr == "" {
		return fallback
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return fallback
	}
	return dur
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

// GetRateLimiterCleanupTimeout returns the rate limiter cleanup timeout as a time.Duration.
// Defaults to 3m if not set or invalid.
func GetRateLimiterCleanupTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("rate_limiter.cleanup_timeout")
	if durStr == "" {
		durStr = "3m"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 3 * time.Minute
	}
	return dur
}

// GetGlobalRateLimiterConfig returns the rate and burst for the per-IP rate limiter from config.
func GetGlobalRateLimiterConfig() (rate float64, burst int) {
	initConfig()
	rate = viper.GetFloat64("rate_limiter.global.rate")
	if rate == 0 {
		rate = 10
	}
	burst = viper.GetInt("rate_limiter.global.burst")
	if burst == 0 {
		burst = 10
	}
	return
}
