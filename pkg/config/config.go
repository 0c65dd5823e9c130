package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SupabaseConfig holds the hosted project's REST endpoint and the
// privileged service-role key. Both are required to serve the dashboard,
// but their absence is reported per request, never as a startup crash.
type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
	QueryTimeout   time.Duration
}

// DatabaseConfig is the direct Postgres port of the same project,
// used only by the seed binary.
type DatabaseConfig struct {
	URL string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env is fine: environment variables may be set directly
	// (Docker/K8s deployments).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	queryTimeout, _ := strconv.Atoi(getEnv("SUPABASE_QUERY_TIMEOUT", "10"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Supabase: SupabaseConfig{
			URL:            getEnv("SUPABASE_URL", ""),
			ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
			QueryTimeout:   time.Duration(queryTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// MissingSecrets returns the names of every required Supabase secret that
// is absent, in declaration order. An empty result means the aggregator
// may talk to the database.
func (c *SupabaseConfig) MissingSecrets() []string {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.ServiceRoleKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
	}
	return missing
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
