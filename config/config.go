package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const dateLayout = "2006-01-02"

// Config holds all run parameters. Every value has a coded default and can
// be overridden through the environment (or a .env file).
type Config struct {
	Seed int64

	StartDate time.Time
	EndDate   time.Time

	ProductsPerSubcategory int
	CustomerCount          int
	PowerCustomerCount     int
	BaseDailyVolume        int

	SimPolicy string

	OutputDir string
	LogLevel  string
}

// Load reads the .env file (if any) and returns a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	start, err := getEnvDate("START_DATE", "2023-07-01")
	if err != nil {
		return nil, err
	}
	end, err := getEnvDate("END_DATE", "2024-07-31")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Seed: int64(getEnvInt("SEED", 42)),

		StartDate: start,
		EndDate:   end,

		ProductsPerSubcategory: getEnvInt("PRODUCTS_PER_SUBCATEGORY", 15),
		CustomerCount:          getEnvInt("CUSTOMER_COUNT", 1000),
		PowerCustomerCount:     getEnvInt("POWER_CUSTOMER_COUNT", 100),
		BaseDailyVolume:        getEnvInt("BASE_DAILY_VOLUME", 100),

		SimPolicy: getEnv("SIM_POLICY", "classic"),

		OutputDir: getEnv("OUTPUT_DIR", "./output"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("config: END_DATE %s precedes START_DATE %s",
			c.EndDate.Format(dateLayout), c.StartDate.Format(dateLayout))
	}
	if c.ProductsPerSubcategory <= 0 {
		return fmt.Errorf("config: PRODUCTS_PER_SUBCATEGORY must be positive, got %d", c.ProductsPerSubcategory)
	}
	if c.CustomerCount <= 0 {
		return fmt.Errorf("config: CUSTOMER_COUNT must be positive, got %d", c.CustomerCount)
	}
	if c.PowerCustomerCount < 0 {
		return fmt.Errorf("config: POWER_CUSTOMER_COUNT must not be negative, got %d", c.PowerCustomerCount)
	}
	if c.BaseDailyVolume <= 0 {
		return fmt.Errorf("config: BASE_DAILY_VOLUME must be positive, got %d", c.BaseDailyVolume)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDate(key, fallback string) (time.Time, error) {
	val := getEnv(key, fallback)
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: %s: invalid date %q (want YYYY-MM-DD): %w", key, val, err)
	}
	return t, nil
}
