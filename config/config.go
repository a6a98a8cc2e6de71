package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Predictor PredictorConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// PredictorConfig configures the external diagnosis predictor service.
type PredictorConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	predictorTimeout, err := time.ParseDuration(viper.GetString("PREDICTOR_TIMEOUT"))
	if err != nil {
		predictorTimeout = 5 * time.Second
	}

	cacheTTL, err := time.ParseDuration(viper.GetString("PREDICTION_CACHE_TTL"))
	if err != nil {
		cacheTTL = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Predictor: PredictorConfig{
			BaseURL:  viper.GetString("PREDICTOR_BASE_URL"),
			Timeout:  predictorTimeout,
			CacheTTL: cacheTTL,
		},
	}

	return config, nil
}
