package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/random"
	"github.com/sirupsen/logrus"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port string

	Neo4jURI      string
	Neo4jUsername string
	Neo4jPassword string

	JWTSecret string
	TokenTTL  time.Duration

	DefaultAdminEmail    string
	DefaultAdminPassword string
	SeedSampleData       bool

	ServeStatic      bool
	StaticDir        string
	CORSAllowOrigins []string
}

// Load reads configuration from the environment, filling development
// defaults for anything unset. A missing JWT secret gets a random
// value so unsigned tokens can never validate.
func Load(log *logrus.Logger) *Config {
	cfg := &Config{
		Port:                 getenv("PORT", "8000"),
		Neo4jURI:             getenv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUsername:        getenv("NEO4J_USERNAME", "neo4j"),
		Neo4jPassword:        getenv("NEO4J_PASSWORD", "password"),
		JWTSecret:            os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:             30 * time.Minute,
		DefaultAdminEmail:    getenv("DEFAULT_ADMIN_EMAIL", "admin@boardinghouse.com"),
		DefaultAdminPassword: getenv("DEFAULT_ADMIN_PASSWORD", "admin123"),
		SeedSampleData:       getenv("SEED_SAMPLE_DATA", "false") == "true",
		ServeStatic:          getenv("SERVE_STATIC", "false") == "true",
		StaticDir:            getenv("STATIC_DIR", "static"),
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			log.Warnf("ignoring invalid LOG_LEVEL %q", level)
		} else {
			log.SetLevel(parsed)
		}
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = random.String(32)
		log.Warn("JWT_SECRET_KEY not set, using a generated secret; tokens will not survive a restart")
	}

	if minutes := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); minutes != "" {
		if m, err := strconv.Atoi(minutes); err == nil && m > 0 {
			cfg.TokenTTL = time.Duration(m) * time.Minute
		} else {
			log.Warnf("ignoring invalid ACCESS_TOKEN_EXPIRE_MINUTES %q", minutes)
		}
	}

	origins := getenv("CORS_ALLOW_ORIGINS", "*")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
