package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Mail          MailConfig
	Storage       StorageConfig
	PasswordReset PasswordResetConfig
	Compat        CompatConfig
}

type AppConfig struct {
	Port     string
	Env      string
	BaseURL  string
	LogLevel string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// MailConfig configures outgoing SMTP. An empty Host logs mails instead of sending them.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ResetURL string
}

type StorageConfig struct {
	Root           string
	PublicPath     string
	MaxUploadBytes int64
}

// PasswordResetConfig.TTL of zero keeps reset tokens valid until consumed.
type PasswordResetConfig struct {
	TTL time.Duration
}

// CompatConfig toggles response fields that older clients still read.
type CompatConfig struct {
	ExposeErrors     bool
	EchoResetSecrets bool
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("JWT_ACCESS_EXPIRY", "24h")

	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_FROM", "no-reply@carefinder.local")
	viper.SetDefault("MAIL_RESET_URL", "http://localhost:3000/reset-password")

	viper.SetDefault("STORAGE_ROOT", "./public")
	viper.SetDefault("STORAGE_PUBLIC_PATH", "/images")
	viper.SetDefault("STORAGE_MAX_UPLOAD_BYTES", 5<<20)

	viper.SetDefault("PASSWORD_RESET_TTL", "0s")

	viper.SetDefault("COMPAT_EXPOSE_ERRORS", false)
	viper.SetDefault("COMPAT_ECHO_RESET_SECRETS", false)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	// A missing .env is fine, the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	resetTTL, err := time.ParseDuration(viper.GetString("PASSWORD_RESET_TTL"))
	if err != nil {
		resetTTL = 0
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			BaseURL:  viper.GetString("APP_BASE_URL"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Mail: MailConfig{
			Host:     viper.GetString("MAIL_HOST"),
			Port:     viper.GetInt("MAIL_PORT"),
			Username: viper.GetString("MAIL_USERNAME"),
			Password: viper.GetString("MAIL_PASSWORD"),
			From:     viper.GetString("MAIL_FROM"),
			ResetURL: viper.GetString("MAIL_RESET_URL"),
		},
		Storage: StorageConfig{
			Root:           viper.GetString("STORAGE_ROOT"),
			PublicPath:     viper.GetString("STORAGE_PUBLIC_PATH"),
			MaxUploadBytes: viper.GetInt64("STORAGE_MAX_UPLOAD_BYTES"),
		},
		PasswordReset: PasswordResetConfig{
			TTL: resetTTL,
		},
		Compat: CompatConfig{
			ExposeErrors:     viper.GetBool("COMPAT_EXPOSE_ERRORS"),
			EchoResetSecrets: viper.GetBool("COMPAT_ECHO_RESET_SECRETS"),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return config, nil
}
