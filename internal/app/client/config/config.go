package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	shared "uteqportal/internal/config"
	"uteqportal/internal/domain/validator"
)

const (
	defaultServerAddress = "https://noticias-uteq-4c62c24e7cc5.herokuapp.com"
	defaultFeedURL       = "https://my-json-server.typicode.com/StevenGualpa/Api_Historial"
	defaultLogLevel      = "info"
	defaultEnv           = shared.EnvLocal
	defaultConfigDir     = ".uteqportal"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	FeedURL       string `mapstructure:"feed_url"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigDir     string `mapstructure:"config_dir"`
	DataPath      string `mapstructure:"data_path"`
	StatePath     string `mapstructure:"state_path"`
	// APIToken - токен редактора для записи в REST API
	APIToken string `mapstructure:"api_token"`
	// InstitutionalDomain - обязательный суффикс почты пользователей
	InstitutionalDomain string `mapstructure:"institutional_domain"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env (текущая или родительская директория) и переменные окружения.
func Load() (*Config, error) {
	if _, err := shared.LoadDotEnv(".env", "../.env"); err != nil {
		fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("FEED_URL", defaultFeedURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("INSTITUTIONAL_DOMAIN", validator.DefaultInstitutionalDomain)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "portal.db")
	}

	config := &Config{
		Env:                 viper.GetString("APP_ENV"),
		ServerAddress:       strings.TrimRight(viper.GetString("SERVER_ADDRESS"), "/"),
		FeedURL:             strings.TrimRight(viper.GetString("FEED_URL"), "/"),
		LogLevel:            viper.GetString("LOG_LEVEL"),
		ConfigDir:           configDir,
		DataPath:            dataPath,
		StatePath:           filepath.Join(configDir, "state.json"),
		APIToken:            viper.GetString("API_TOKEN"),
		InstitutionalDomain: viper.GetString("INSTITUTIONAL_DOMAIN"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if !validator.IsWellFormedURL(c.ServerAddress) {
		return fmt.Errorf("server_address должен быть URL: %q", c.ServerAddress)
	}
	if !validator.IsWellFormedURL(c.FeedURL) {
		return fmt.Errorf("feed_url должен быть URL: %q", c.FeedURL)
	}
	if !shared.ValidEnv(c.Env) {
		return fmt.Errorf("неизвестное окружение: %q", c.Env)
	}
	if strings.TrimSpace(c.InstitutionalDomain) == "" {
		return fmt.Errorf("institutional_domain не может быть пустым")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == shared.EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == shared.EnvLocal || c.Env == ""
}
