package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	Sheet        SheetConfig
	Payroll      PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// SheetConfig points at the legacy spreadsheet store. When WorkbookPath is
// set, a scheduled job re-imports the workbook into the database on every
// interval.
type SheetConfig struct {
	WorkbookPath    string
	AttendanceSheet string
	BreakSheet      string
	ImportInterval  time.Duration
}

// PayrollConfig holds the standard-hours table and the fixed durations for
// leave-type work categories. It is passed into the payroll service
// explicitly; nothing reads it through a global.
type PayrollConfig struct {
	StandardMonthlyHours  float64
	StandardHoursByMonth  map[time.Month]float64
	PaidLeaveMinutes      int
	ScheduledLeaveMinutes int
	SpecialLeaveMinutes   int
	HalfDayMinutes        int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "kintai"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// OAuth2 Google configuration (optional: Google login is disabled when
	// the client ID is unset)
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// Spreadsheet import configuration
	importInterval, err := time.ParseDuration(getEnv("SHEET_IMPORT_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEET_IMPORT_INTERVAL: %w", err)
	}

	config.Sheet = SheetConfig{
		WorkbookPath:    getEnv("SHEET_WORKBOOK_PATH", ""),
		AttendanceSheet: getEnv("SHEET_ATTENDANCE_NAME", "勤怠"),
		BreakSheet:      getEnv("SHEET_BREAK_NAME", "休憩"),
		ImportInterval:  importInterval,
	}

	// Payroll configuration
	standardHours, err := strconv.ParseFloat(getEnv("STANDARD_MONTHLY_HOURS", "160"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_MONTHLY_HOURS: %w", err)
	}

	overrides, err := parseMonthlyOverrides(getEnv("STANDARD_HOURS_OVERRIDES", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_HOURS_OVERRIDES: %w", err)
	}

	paidLeave, err := strconv.Atoi(getEnv("PAID_LEAVE_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAID_LEAVE_MINUTES: %w", err)
	}
	scheduledLeave, err := strconv.Atoi(getEnv("SCHEDULED_LEAVE_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULED_LEAVE_MINUTES: %w", err)
	}
	specialLeave, err := strconv.Atoi(getEnv("SPECIAL_LEAVE_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid SPECIAL_LEAVE_MINUTES: %w", err)
	}
	halfDay, err := strconv.Atoi(getEnv("HALF_DAY_MINUTES", "240"))
	if err != nil {
		return nil, fmt.Errorf("invalid HALF_DAY_MINUTES: %w", err)
	}

	config.Payroll = PayrollConfig{
		StandardMonthlyHours:  standardHours,
		StandardHoursByMonth:  overrides,
		PaidLeaveMinutes:      paidLeave,
		ScheduledLeaveMinutes: scheduledLeave,
		SpecialLeaveMinutes:   specialLeave,
		HalfDayMinutes:        halfDay,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.OAuth2Google.ClientID != "" {
		if c.OAuth2Google.ClientSecret == "" {
			return fmt.Errorf("CLIENT_SECRET is required when CLIENT_ID is set")
		}
		if c.OAuth2Google.RedirectURL == "" {
			return fmt.Errorf("REDIRECT_URL is required when CLIENT_ID is set")
		}
		if len(c.OAuth2Google.Scopes) == 0 {
			return fmt.Errorf("SCOPES is required when CLIENT_ID is set")
		}
	}
	if c.Payroll.StandardMonthlyHours <= 0 {
		return fmt.Errorf("STANDARD_MONTHLY_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseMonthlyOverrides reads "4:168,12:144" style month:hours pairs.
func parseMonthlyOverrides(value string) (map[time.Month]float64, error) {
	overrides := make(map[time.Month]float64)
	if value == "" {
		return overrides, nil
	}
	for _, pair := range strings.Split(value, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed pair %q", pair)
		}
		month, err := strconv.Atoi(parts[0])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("malformed month in %q", pair)
		}
		hours, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed hours in %q", pair)
		}
		overrides[time.Month(month)] = hours
	}
	return overrides, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
