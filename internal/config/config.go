// Package config - общие для клиента и сервера константы окружения и загрузка .env.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// LoadDotEnv загружает первый найденный .env из candidates.
// Возвращает путь загруженного файла или "" если файлов нет.
func LoadDotEnv(candidates ...string) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return path, err
		}
		return path, nil
	}
	return "", nil
}

// ValidEnv сообщает, известно ли окружение.
func ValidEnv(env string) bool {
	switch env {
	case EnvLocal, EnvDev, EnvProd:
		return true
	}
	return false
}
