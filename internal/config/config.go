// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string

	// Pipeline backend base URL. The web client read NEXT_PUBLIC_API_URL;
	// the same contract lives here now.
	PipelineAPIURL  string
	PipelineTimeout time.Duration

	// ForceDemo pins every session to fixture data regardless of the
	// health probe. Used for sales demos and CI.
	ForceDemo bool

	CORSAllowedOrigins []string
}

func Load() *Config {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "brandtruth")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	timeoutSeconds := 30
	if v, err := strconv.Atoi(getEnv("PIPELINE_TIMEOUT_SECONDS", "30")); err == nil && v > 0 {
		timeoutSeconds = v
	}

	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        databaseURL,
		PipelineAPIURL:     getEnv("PIPELINE_API_URL", "http://localhost:8000"),
		PipelineTimeout:    time.Duration(timeoutSeconds) * time.Second,
		ForceDemo:          getBool("DEMO_MODE"),
		CORSAllowedOrigins: origins,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
