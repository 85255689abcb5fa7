package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	StoreBackend  string // memory | database
	DBDriver      string // sqlite | postgres | mysql
	DBName        string
	DBDSN         string
	MockLatencyMS int
	SeedDemo      bool

	WizardStepValidation bool

	GatewayURL       string
	GatewayKey       string
	GatewayTimeoutMS int

	SendGridKey   string
	EmailSender   string
	EmailPassword string // SMTP password

	SchedulerEnabled bool
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		StoreBackend:  getEnv("STORE_BACKEND", "memory"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBName:        getEnv("DB_NAME", "startupos.db"),
		DBDSN:         getEnv("DB_DSN", ""),
		MockLatencyMS: getEnvInt("MOCK_LATENCY_MS", 0),
		SeedDemo:      getEnvBool("SEED_DEMO", false),

		WizardStepValidation: getEnvBool("WIZARD_STEP_VALIDATION", false),

		GatewayURL:       getEnv("GATEWAY_URL", ""),
		GatewayKey:       getEnv("GATEWAY_KEY", ""),
		GatewayTimeoutMS: getEnvInt("GATEWAY_TIMEOUT_MS", 10000),

		SendGridKey:   getEnv("SENDGRID_API_KEY", ""),
		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		SchedulerEnabled: getEnvBool("SCHEDULER_ENABLED", true),
	}

	if AppConfig.StoreBackend != "memory" && AppConfig.StoreBackend != "database" {
		log.Printf("Warning: unknown STORE_BACKEND %q, falling back to memory.", AppConfig.StoreBackend)
		AppConfig.StoreBackend = "memory"
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
