package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	shared "uteqportal/internal/config"
)

const (
	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
	// APIToken - токен редактора; пустой - запись без авторизации
	APIToken string `env:"API_TOKEN"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad загружает конфигурацию сервера из .env и окружения
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	if path, err := shared.LoadDotEnv(".env", "../../.env"); err != nil {
		log.Printf("failed to load %s: %v", path, err)
	} else if path == "" {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("app_env", shared.EnvLocal)
	viper.SetDefault("log_level", "info")

	config := &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress: viper.GetString("run_address"),
			APIToken:   viper.GetString("api_token"),
		},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}

	if config.DB.DatabaseURI == "" {
		return nil, fmt.Errorf("DATABASE_URI is required")
	}
	if !shared.ValidEnv(config.Env) {
		return nil, fmt.Errorf("unknown APP_ENV %q", config.Env)
	}
	return config, nil
}
