package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string `validate:"required,numeric"`
	BaseURL            string `validate:"required,url"`
	Environment        string `validate:"oneof=development production test"`
	LogFilePath        string `validate:"required"`
	AccessLogFilePath  string
	CorsAllowedOrigins string `validate:"required"`
	ApiPrefix          string `validate:"omitempty,startswith=/"`
	ShutdownTimeout    int    `validate:"gt=0"` // seconds
}

type DatasetConfig struct {
	Path    string // local file; empty means the bundled dataset
	Preload bool   // load at startup instead of on the first request
	S3      ObjectStoreConfig
}

type ObjectStoreConfig struct {
	Endpoint  string `validate:"required_with=Bucket"`
	AccessKey string
	SecretKey string
	Bucket    string
	Object    string `validate:"required_with=Bucket"`
	UseSSL    bool
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string `validate:"required_if=Enabled true"`
	ServiceName string `validate:"required"`
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AccessLogFilePath:  getEnv("ACCESS_LOG_FILE_PATH", "logs/access.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			ApiPrefix:          getEnv("API_PREFIX", "/api"),
			ShutdownTimeout:    getEnvAsInt("APP_SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		Dataset: DatasetConfig{
			Path:    getEnv("DATASET_PATH", ""),
			Preload: getEnvAsBool("DATASET_PRELOAD", true),
			S3: ObjectStoreConfig{
				Endpoint:  getEnv("DATASET_S3_ENDPOINT", ""),
				AccessKey: getEnv("DATASET_S3_ACCESS_KEY", ""),
				SecretKey: getEnv("DATASET_S3_SECRET_KEY", ""),
				Bucket:    getEnv("DATASET_S3_BUCKET", ""),
				Object:    getEnv("DATASET_S3_OBJECT", "quotes.json"),
				UseSSL:    getEnvAsBool("DATASET_S3_USE_SSL", true),
			},
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "islamic-quotes-api"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
