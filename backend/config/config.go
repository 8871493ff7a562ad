// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lordSauron1710/dc-simulator-sub000/backend/models"
)

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)
	CacheTTL           int      // seconds, default for general cache

	// Rate Limiting
	RateLimitEnabled   bool // Enable rate limiting (default: true)
	RateLimitPerMinute int  // Requests per minute per client (default: 120)

	// Campus document (optional boot document)
	CampusFile   string
	FetchTimeout int // seconds, for remote campus documents (default: 30)

	// vSphere (optional)
	VSphereHost       string
	VSphereUsername   string
	VSpherePassword   string
	VSphereDatacenter string
	VSphereInsecure   bool
	VSphereCacheTTL   int // seconds, default 300 (5 min)

	// Fallback parameters for empty or partial campuses
	DefaultTargetPUE       float64
	DefaultWhitespaceRatio float64
	DefaultRackDensityKW   float64
	DefaultCriticalLoadMW  float64
	DefaultHallCount       int
	DefaultRedundancy      string
	DefaultCoolingType     string
	DefaultContainment     string
}

// VSphereConfigured returns true if vSphere credentials are set
func (c *Config) VSphereConfigured() bool {
	return c.VSphereHost != "" && c.VSphereUsername != "" && c.VSpherePassword != "" && c.VSphereDatacenter != ""
}

// FetchTimeoutDuration returns the remote document fetch timeout
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// DefaultParams bundles the configured fallbacks as derivation inputs
func (c *Config) DefaultParams() models.Params {
	return models.Params{
		HallCount:       c.DefaultHallCount,
		CriticalLoadMW:  c.DefaultCriticalLoadMW,
		RackDensityKW:   c.DefaultRackDensityKW,
		TargetPUE:       c.DefaultTargetPUE,
		WhitespaceRatio: c.DefaultWhitespaceRatio,
		Redundancy:      c.DefaultRedundancy,
		CoolingType:     c.DefaultCoolingType,
		Containment:     c.DefaultContainment,
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),

		RateLimitEnabled:   getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		CampusFile:   os.Getenv("CAMPUS_FILE"),
		FetchTimeout: getEnvInt("FETCH_TIMEOUT", 30),

		VSphereHost:       os.Getenv("VSPHERE_HOST"),
		VSphereUsername:   os.Getenv("VSPHERE_USERNAME"),
		VSpherePassword:   os.Getenv("VSPHERE_PASSWORD"),
		VSphereDatacenter: os.Getenv("VSPHERE_DATACENTER"),
		VSphereInsecure:   getEnvBool("VSPHERE_INSECURE", false),
		VSphereCacheTTL:   getEnvInt("VSPHERE_CACHE_TTL", 300),

		DefaultTargetPUE:       getEnvFloat("DEFAULT_TARGET_PUE", 1.45),
		DefaultWhitespaceRatio: getEnvFloat("DEFAULT_WHITESPACE_RATIO", 0.45),
		DefaultRackDensityKW:   getEnvFloat("DEFAULT_RACK_DENSITY_KW", 12),
		DefaultCriticalLoadMW:  getEnvFloat("DEFAULT_CRITICAL_LOAD_MW", 5),
		DefaultHallCount:       getEnvInt("DEFAULT_HALL_COUNT", 4),
		DefaultRedundancy:      getEnv("DEFAULT_REDUNDANCY", models.RedundancyN1),
		DefaultCoolingType:     getEnv("DEFAULT_COOLING", models.CoolingAir),
		DefaultContainment:     getEnv("DEFAULT_CONTAINMENT", models.ContainmentHotAisle),
	}

	if cfg.RateLimitPerMinute < 1 || cfg.RateLimitPerMinute > 10000 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be between 1 and 10000, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.FetchTimeout < 1 || cfg.FetchTimeout > 600 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be between 1 and 600 seconds, got %d", cfg.FetchTimeout)
	}

	lim := models.CampusLimits
	if cfg.DefaultTargetPUE < lim.TargetPUE.Min || cfg.DefaultTargetPUE > lim.TargetPUE.Max {
		return nil, fmt.Errorf("DEFAULT_TARGET_PUE must be between %.2f and %.2f, got %.2f",
			lim.TargetPUE.Min, lim.TargetPUE.Max, cfg.DefaultTargetPUE)
	}
	if cfg.DefaultWhitespaceRatio < lim.WhitespaceRatio.Min || cfg.DefaultWhitespaceRatio > lim.WhitespaceRatio.Max {
		return nil, fmt.Errorf("DEFAULT_WHITESPACE_RATIO must be between %.2f and %.2f, got %.2f",
			lim.WhitespaceRatio.Min, lim.WhitespaceRatio.Max, cfg.DefaultWhitespaceRatio)
	}
	if cfg.DefaultRackDensityKW < lim.RackDensityKW.Min || cfg.DefaultRackDensityKW > lim.RackDensityKW.Max {
		return nil, fmt.Errorf("DEFAULT_RACK_DENSITY_KW must be between %.0f and %.0f, got %.1f",
			lim.RackDensityKW.Min, lim.RackDensityKW.Max, cfg.DefaultRackDensityKW)
	}
	if cfg.DefaultCriticalLoadMW < lim.CriticalLoadMW.Min || cfg.DefaultCriticalLoadMW > lim.CriticalLoadMW.Max {
		return nil, fmt.Errorf("DEFAULT_CRITICAL_LOAD_MW must be between %.1f and %.0f, got %.1f",
			lim.CriticalLoadMW.Min, lim.CriticalLoadMW.Max, cfg.DefaultCriticalLoadMW)
	}
	if cfg.DefaultHallCount < 1 || cfg.DefaultHallCount > 64 {
		return nil, fmt.Errorf("DEFAULT_HALL_COUNT must be between 1 and 64, got %d", cfg.DefaultHallCount)
	}
	if !models.IsRedundancy(cfg.DefaultRedundancy) {
		return nil, fmt.Errorf("DEFAULT_REDUNDANCY must be one of %v, got %q", models.Redundancies, cfg.DefaultRedundancy)
	}
	if !models.IsCoolingType(cfg.DefaultCoolingType) {
		return nil, fmt.Errorf("DEFAULT_COOLING must be one of %v, got %q", models.CoolingTypes, cfg.DefaultCoolingType)
	}
	if !models.IsContainment(cfg.DefaultContainment) {
		return nil, fmt.Errorf("DEFAULT_CONTAINMENT must be one of %v, got %q", models.Containments, cfg.DefaultContainment)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
