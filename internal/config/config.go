package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Mode string

const (
	// ModeNetworked plans through BACKEND_URL and falls back to demo data.
	ModeNetworked Mode = "networked"
	// ModeStatic plans with the local mock pipeline only.
	ModeStatic Mode = "static"

	staticHostMarker = "github.io"
	staticBasePath   = "/VoyageAI-Explorer"
)

type Config struct {
	Port           string
	GinMode        string
	Mode           Mode
	BackendURL     string
	BasePath       string
	MockLatency    time.Duration
	FallbackDelay  time.Duration
	BackendTimeout time.Duration
	InFlightTTL    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Port:           withDefault(getenv("PORT"), "8000"),
		GinMode:        getenv("GIN_MODE"),
		BackendURL:     strings.TrimRight(strings.TrimSpace(getenv("BACKEND_URL")), "/"),
		MockLatency:    durationOr(getenv("MOCK_LATENCY"), time.Second),
		FallbackDelay:  durationOr(getenv("FALLBACK_DELAY"), 1500*time.Millisecond),
		BackendTimeout: durationOr(getenv("BACKEND_TIMEOUT"), 30*time.Second),
		InFlightTTL:    durationOr(getenv("INFLIGHT_TTL"), 2*time.Minute),
		RateLimitRPS:   floatOr(getenv("RATE_LIMIT_RPS"), 2),
		RateLimitBurst: intOr(getenv("RATE_LIMIT_BURST"), 5),
	}

	staticHost := strings.Contains(strings.ToLower(getenv("PUBLIC_HOST")), staticHostMarker)
	if cfg.BackendURL == "" || staticHost {
		cfg.Mode = ModeStatic
	} else {
		cfg.Mode = ModeNetworked
	}

	if bp, ok := lookup(getenv, "BASE_PATH"); ok {
		cfg.BasePath = normalizeBasePath(bp)
	} else if staticHost {
		cfg.BasePath = staticBasePath
	}

	return cfg
}

func (c Config) Networked() bool {
	return c.Mode == ModeNetworked
}

var repeatedSlashes = regexp.MustCompile(`/+`)

// AssetPath resolves a static resource path under the base path.
func (c Config) AssetPath(path string) string {
	clean := strings.TrimPrefix(path, "/")
	return repeatedSlashes.ReplaceAllString(c.BasePath+"/"+clean, "/")
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	return "/" + strings.Trim(p, "/")
}

func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	return v, v != ""
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("config: invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}

func floatOr(v string, fallback float64) float64 {
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("config: invalid number %q, using %v", v, fallback)
		return fallback
	}
	return f
}

func intOr(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid integer %q, using %d", v, fallback)
		return fallback
	}
	return n
}
